package buildinfo

import "testing"

func TestBinaryVersion(t *testing.T) {
	if BinaryVersion == "" {
		t.Error("BinaryVersion should not be empty")
	}
}

func TestModuleVersion(t *testing.T) {
	// Build info may be unavailable in test binaries; the call must not panic
	// and an empty result is acceptable.
	_ = ModuleVersion()
}
