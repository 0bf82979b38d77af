package crash

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReportCreatesFileInTemp(t *testing.T) {
	path, err := writeReport(nil, "boom", []byte("stacktrace"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(path) })
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "Doodler Crash Report") {
		t.Fatalf("report header missing")
	}
	if !strings.Contains(s, "Panic: boom") {
		t.Fatalf("panic content missing: %s", s)
	}
	if strings.Contains(s, "State:") {
		t.Fatalf("no summary was configured: %s", s)
	}
}

func TestWriteReportCreatesFileInConfiguredDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	rep := &Report{Dir: dir, Summary: func() string { return "strokes=2 shapes=1" }}

	path, err := writeReport(rep, "kaboom", []byte("stack"))
	if err != nil {
		t.Fatalf("writeReport error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("expected crash report under %s, got %s", dir, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(b), "State: strokes=2 shapes=1") {
		t.Fatalf("summary missing: %s", b)
	}
}

func TestSafeSummarySurvivesPanic(t *testing.T) {
	got := safeSummary(func() string { panic("nested") })
	if !strings.Contains(got, "nested") {
		t.Fatalf("safeSummary = %q", got)
	}
}
