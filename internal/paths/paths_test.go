package paths

import (
	"path/filepath"
	"testing"
)

func TestRecipe(t *testing.T) {
	got := Recipe("abc123")
	if filepath.Base(got) != "abc123" {
		t.Fatalf("Recipe = %q, want digest as last element", got)
	}
	if filepath.Dir(filepath.Dir(got)) != Cache() {
		t.Fatalf("Recipe = %q, want it under %q", got, Cache())
	}
	if filepath.Base(Cache()) != appName {
		t.Fatalf("Cache = %q, want base %q", Cache(), appName)
	}
}
