package tui

import "github.com/charmbracelet/lipgloss"

var appStyle = lipgloss.NewStyle().Padding(1, 2)
