package repository

import (
	"testing"
)

func TestNewPresetRepository(t *testing.T) {
	repo := NewPresetRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil PresetRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestPresetSentinelError(t *testing.T) {
	if ErrPresetNotFound == nil {
		t.Fatal("ErrPresetNotFound should not be nil")
	}
	if ErrPresetNotFound.Error() != "preset not found" {
		t.Fatalf("unexpected error message: %s", ErrPresetNotFound.Error())
	}
}
