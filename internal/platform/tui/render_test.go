package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "cells:")
	s.SetColored(7, 0, '1', core.NumberColor(1))
	s.SetColored(8, 0, '2', core.NumberColor(2))
	s.DrawTextColored(0, 1, "BOOM", core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
	for _, want := range []string{"cells:", "1", "2", "BOOM"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for n := 0; n <= 8; n++ {
		if _, ok := colorStyles[core.NumberColor(n)]; !ok {
			t.Errorf("no style for number %d color", n)
		}
	}
	for _, c := range []core.Color{core.ColorCursor, core.ColorGray, core.ColorBrightRed, core.ColorYellow} {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText() should not truncate, got %q", got)
	}
}
