package config

import (
	"os"
	"testing"
)

func TestApplySeedOverrideUnsetReturnsOriginal(t *testing.T) {
	os.Clearenv()
	got, err := ApplySeedOverride(12345)
	if err != nil {
		t.Fatalf("ApplySeedOverride returned error: %v", err)
	}
	if got != 12345 {
		t.Fatalf("got %d, want 12345 (unset env should pass through)", got)
	}
}

func TestApplySeedOverrideSetOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv(EnvSeed, "999")
	got, err := ApplySeedOverride(12345)
	if err != nil {
		t.Fatalf("ApplySeedOverride returned error: %v", err)
	}
	if got != 999 {
		t.Fatalf("got %d, want 999 from %s", got, EnvSeed)
	}
}

func TestApplySeedOverrideInvalidValueErrors(t *testing.T) {
	os.Clearenv()
	os.Setenv(EnvSeed, "not-a-number")
	if _, err := ApplySeedOverride(1); err == nil {
		t.Fatal("expected an error for a non-numeric seed override")
	}
}
