package prereq

import (
	"errors"
	"testing"
)

// stubLookPath resolves every name in found and fails the rest.
func stubLookPath(found ...string) func(string) (string, error) {
	set := make(map[string]bool, len(found))
	for _, f := range found {
		set[f] = true
	}
	return func(file string) (string, error) {
		if set[file] {
			return "/usr/bin/" + file, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestMissing_AllPresent(t *testing.T) {
	c := NewChecker("git", "node", "npm")
	c.LookPath = stubLookPath("git", "node", "npm")

	if missing := c.Missing(); len(missing) != 0 {
		t.Errorf("Expected no missing tools, got %v", missing)
	}
}

func TestMissing_ReportsAllAbsent(t *testing.T) {
	c := NewChecker("git", "node", "npm")
	c.LookPath = stubLookPath("git")

	missing := c.Missing()
	if len(missing) != 2 {
		t.Fatalf("Expected 2 missing tools, got %d (%v)", len(missing), missing)
	}
	if missing[0] != "node" || missing[1] != "npm" {
		t.Errorf("Expected [node npm], got %v", missing)
	}
}

func TestMissing_NonePresent(t *testing.T) {
	c := NewChecker("git", "node", "npm")
	c.LookPath = stubLookPath()

	if missing := c.Missing(); len(missing) != 3 {
		t.Errorf("Expected all 3 tools missing, got %v", missing)
	}
}

func TestDefaultTools(t *testing.T) {
	tools := DefaultTools()
	if len(tools) != 3 {
		t.Fatalf("Expected 3 default tools, got %d", len(tools))
	}
}
