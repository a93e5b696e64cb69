package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPadUsesDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
	}{
		{name: "ascii", in: "EAST", width: 8},
		{name: "accented region name", in: "Côte Nord", width: 12},
		{name: "wide runes", in: "北部", width: 8},
		{name: "already wide enough", in: "Southern Territory", width: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pad(tt.in, tt.width)
			want := tt.width
			if lipgloss.Width(tt.in) > tt.width {
				want = lipgloss.Width(tt.in)
			}
			assert.Equal(t, want, lipgloss.Width(got))
		})
	}
}
