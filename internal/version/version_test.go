package version

import (
	"strings"
	"testing"
)

func TestInitPopulatesFields(t *testing.T) {
	if Version == "" {
		t.Error("Version empty after init")
	}
	if Commit == "" {
		t.Error("Commit empty after init")
	}
}

func TestFullIncludesVersionAndCommit(t *testing.T) {
	full := Full()
	if !strings.Contains(full, Version) {
		t.Errorf("Full() = %q, missing version %q", full, Version)
	}
	if !strings.Contains(full, Commit) {
		t.Errorf("Full() = %q, missing commit %q", full, Commit)
	}
}
