package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorValue = lipgloss.Color("#06B6D4") // Cyan
	colorError = lipgloss.Color("#EF4444") // Red
	colorMuted = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	value lipgloss.Style
	err   lipgloss.Style
	muted lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{value: plain, err: plain, muted: plain}
	}

	return styles{
		value: lipgloss.NewStyle().Foreground(colorValue).Bold(true),
		err:   lipgloss.NewStyle().Foreground(colorError),
		muted: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
