//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"log/slog"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"doodler/internal/config"
	"doodler/internal/crash"
	"doodler/internal/doodle"
	applog "doodler/internal/log"
	"doodler/internal/version"
)

// Run opens the doodle window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	tc, err := cfg.ToolConfig()
	if err != nil {
		return fmt.Errorf("tool config: %w", err)
	}

	model := doodle.NewModel(doodle.Options{MaxHistory: cfg.History.MaxDepth})
	defer crash.Recover(&crash.Report{Dir: cfg.Crash.Dir, Summary: model.Summary})
	ctrl := doodle.NewController(model, tc)
	l.Info("starting UI", slog.String("widget", model.ID()), slog.String("tool", tc.Tool.String()))

	fyneApp := app.NewWithID("io.doodler.app")
	w := fyneApp.NewWindow("Doodler")
	// Restore window size from preferences (config size as fallback)
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", cfg.Canvas.Width)
	winH := prefs.IntWithFallback("window.height", cfg.Canvas.Height+48)
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	dw := NewDrawingWidget(ctrl, cfg.BackgroundColor().NRGBA(), fyne.NewSize(200, 150))
	tb := newToolbar(dw, w.Canvas(), l)
	defer tb.Close()

	w.SetContent(container.NewBorder(tb.Object(), tb.status, nil, nil, dw))
	w.SetMainMenu(mainMenu(w, tb))
	addHistoryShortcuts(w.Canvas(), tb)

	// Persist preferences on close
	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		l.Info("closing UI", slog.String("state", model.Summary()))
		w.Close()
	})

	w.ShowAndRun()
	return nil
}

func mainMenu(w fyne.Window, tb *toolbar) *fyne.MainMenu {
	aboutItem := fyne.NewMenuItem("About Doodler", func() {
		info := fmt.Sprintf("Doodler\nVersion: %s\nOS: %s\nArch: %s\nGo: %s",
			version.String(), runtime.GOOS, runtime.GOARCH, runtime.Version())
		dialog.ShowInformation("About", info, w)
	})
	return fyne.NewMainMenu(tb.editMenu(), fyne.NewMenu("Help", aboutItem))
}
