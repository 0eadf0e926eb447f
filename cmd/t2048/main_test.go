package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

func TestCloseLogFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "t2048-*.log")
	if err != nil {
		t.Fatal(err)
	}
	logFile = f

	if err := closeLogFile(); err != nil {
		t.Fatalf("closeLogFile() error = %v", err)
	}
	if logFile != nil {
		t.Error("closeLogFile should reset the handle")
	}
	if _, err := f.WriteString("late"); err == nil {
		t.Error("log file should be closed")
	}
	if err := closeLogFile(); err != nil {
		t.Errorf("second closeLogFile() error = %v", err)
	}
}

func TestLogFileClosedAfterFailedCommand(t *testing.T) {
	dir := t.TempDir()
	oldWD, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatal(wdErr)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "t2048.log")

	rootCmd.SetArgs([]string{"--log-file", path, "apply", "--size", "0"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	if !errors.Is(err, t2048.ErrInvalidSideLength) {
		t.Fatalf("Execute() error = %v, want ErrInvalidSideLength", err)
	}
	if logFile == nil {
		t.Fatal("setup should have opened the log file")
	}
	f := logFile

	if err := closeLogFile(); err != nil {
		t.Fatalf("closeLogFile() error = %v", err)
	}
	if _, err := f.WriteString("late"); err == nil {
		t.Error("log file should be closed after a failed command")
	}
}
