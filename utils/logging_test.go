package utils

import "testing"

func TestInitLoggingAssignsRunID(t *testing.T) {
	InitLogging()

	if InfoLogger == nil || ErrorLogger == nil {
		t.Fatal("expected loggers to be initialized")
	}
	if len(RunID()) != 8 {
		t.Errorf("expected 8-char run ID, got %q", RunID())
	}

	first := RunID()
	InitLogging()
	if RunID() == first {
		t.Error("expected a fresh run ID per initialization")
	}
}

func TestLogHelpersInitializeLazily(t *testing.T) {
	InfoLogger = nil
	ErrorLogger = nil

	LogInfo("lazy init check")
	if InfoLogger == nil {
		t.Error("LogInfo should initialize logging on demand")
	}
}
