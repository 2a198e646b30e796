package iotui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gnames/gnradial/pkg/rank"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("34")
	colorRed   = lipgloss.Color("160")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNormal   = lipgloss.NewStyle()
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleStatus   = lipgloss.NewStyle().Foreground(colorGreen)
	styleError    = lipgloss.NewStyle().Foreground(colorRed)
)

// rankStyle colors a rank label the same way nodes of the rank are
// colored in pictures.
func rankStyle(r rank.Rank) lipgloss.Style {
	c, err := rank.ColorOf(r)
	if err != nil {
		return styleDim
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}
