package ui

import (
	"testing"

	"fireca/internal/sims/forestfire"
)

func TestBuildLinesIncludesStatsAndGroups(t *testing.T) {
	cfg := forestfire.DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	f, err := forestfire.New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lines := buildLines(f, true)
	if lines[0].kind != lineTitle || lines[0].label != "forestfire (paused)" {
		t.Fatalf("unexpected title %+v", lines[0])
	}
	headings := map[string]bool{}
	entries := map[string]string{}
	for _, l := range lines {
		switch l.kind {
		case lineHeading:
			headings[l.label] = true
		case lineEntry:
			entries[l.label] = l.value
		}
	}
	for _, want := range []string{"Status", "World", "Growth", "Fire", "Decay"} {
		if !headings[want] {
			t.Fatalf("missing heading %q in %v", want, headings)
		}
	}
	if entries["Tick"] != "0" {
		t.Fatalf("expected tick 0, got %q", entries["Tick"])
	}
	if entries["Variant"] != string(forestfire.VariantMooreWeighted) {
		t.Fatalf("expected variant entry, got %q", entries["Variant"])
	}
}

func TestFitLabel(t *testing.T) {
	if got := fitLabel("Seed", "42", 10); got != "Seed   " {
		t.Fatalf("fitLabel padded = %q", got)
	}
	if got := fitLabel("Spread per burning neighbor", "0.4", 12); got != "Spread ~" {
		t.Fatalf("fitLabel trimmed = %q", got)
	}
	if got := fitLabel("x", "123456", 4); got != "" {
		t.Fatalf("fitLabel without room = %q", got)
	}
}
