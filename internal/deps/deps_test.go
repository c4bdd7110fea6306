package deps_test

import (
	"testing"

	"cleaver/internal/deps"
)

func TestCheckBinariesHandlesMissingCommand(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{
		{Name: "Empty", Command: ""},
		{Name: "Nonexistent", Command: "cleaver-no-such-binary"},
	})
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	for _, status := range statuses {
		if status.Available {
			t.Fatalf("%s should be unavailable", status.Name)
		}
		if status.Detail == "" {
			t.Fatalf("%s should carry a detail message", status.Name)
		}
	}
}

func TestCheckBinariesFindsShell(t *testing.T) {
	statuses := deps.CheckBinaries([]deps.Requirement{{Name: "Shell", Command: "sh"}})
	if !statuses[0].Available {
		t.Fatalf("expected sh to be available: %+v", statuses[0])
	}
}

func TestMissingRequired(t *testing.T) {
	statuses := []deps.Status{
		{Name: "A", Available: true},
		{Name: "B", Available: false},
		{Name: "C", Available: false, Optional: true},
	}
	missing := deps.MissingRequired(statuses)
	if len(missing) != 1 || missing[0] != "B" {
		t.Fatalf("unexpected missing list: %v", missing)
	}
}
