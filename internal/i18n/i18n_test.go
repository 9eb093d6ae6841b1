package i18n

import (
	"slices"
	"testing"
)

func TestInitAndLanguages(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}
	langs := Languages()
	for _, want := range []string{"en", "de"} {
		if !slices.Contains(langs, want) {
			t.Fatalf("expected locale %q in %v", want, langs)
		}
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	if got := T("list.empty"); got != "No exams scheduled." {
		t.Fatalf("unexpected translation: %q", got)
	}
	if got := T("add.success", 234124); got != "Exam for course 234124 added." {
		t.Fatalf("unexpected formatted translation: %q", got)
	}
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected fallback to message id, got %q", got)
	}
}

func TestT_German(t *testing.T) {
	Init("de")
	defer Init("en")
	if got := T("list.empty"); got != "Keine Prüfungen geplant." {
		t.Fatalf("unexpected translation: %q", got)
	}
}
