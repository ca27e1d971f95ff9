package app

import (
	"strings"
	"testing"
)

func TestBuildVersion(t *testing.T) {
	got := BuildVersion()
	if !strings.Contains(got, Version) || !strings.Contains(got, Commit) {
		t.Errorf("BuildVersion() = %q, want it to contain %q and %q", got, Version, Commit)
	}
}
