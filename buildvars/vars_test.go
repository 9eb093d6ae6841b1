package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}
	Version = "1.2.3"
	if got := VersionOrDefault("dev"); got != "1.2.3" {
		t.Fatalf("expected 1.2.3, got %q", got)
	}
}
