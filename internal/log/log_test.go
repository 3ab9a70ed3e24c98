// ABOUTME: Tests for the level-gated logging wrapper
// ABOUTME: Verifies level storage and the default gate

package log

import "testing"

func TestLevelRoundTrip(t *testing.T) {
	defer SetLevel(LevelInfo)

	if GetLevel() != LevelInfo {
		t.Errorf("default level = %v, want info", GetLevel())
	}

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("level = %v, want debug", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("level = %v, want error", GetLevel())
	}
}
