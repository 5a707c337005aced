package ui

import (
	"fmt"
	"strings"

	"fireca/internal/core"
)

type lineKind int

const (
	lineTitle lineKind = iota
	lineHeading
	lineEntry
	lineBlank
)

type hudLine struct {
	kind  lineKind
	label string
	value string
}

// buildLines flattens the sim's title, live stats and parameter groups into
// the rows the HUD panel draws top to bottom.
func buildLines(sim core.Sim, paused bool) []hudLine {
	title := "Controls"
	if sim != nil && sim.Name() != "" {
		title = sim.Name()
	}
	if paused {
		title += " (paused)"
	}
	lines := []hudLine{{kind: lineTitle, label: title}}

	if sp, ok := sim.(core.StatsProvider); ok {
		lines = append(lines, hudLine{kind: lineBlank}, hudLine{kind: lineHeading, label: "Status"})
		for _, p := range sp.Stats() {
			lines = append(lines, hudLine{kind: lineEntry, label: p.Label, value: p.Value})
		}
	}

	pp, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, group := range pp.Parameters().Groups {
		lines = append(lines, hudLine{kind: lineBlank}, hudLine{kind: lineHeading, label: group.Name})
		for _, p := range group.Params {
			lines = append(lines, hudLine{kind: lineEntry, label: p.Label, value: p.Value})
		}
	}
	return lines
}

// fitLabel trims label so label and value fit in cols characters.
func fitLabel(label, value string, cols int) string {
	room := cols - len(value) - 1
	if room <= 0 {
		return ""
	}
	if len(label) <= room {
		return label + strings.Repeat(" ", room-len(label))
	}
	if room <= 1 {
		return label[:room]
	}
	return fmt.Sprintf("%s~", label[:room-1])
}
