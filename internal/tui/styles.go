package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	paneSelected    = paneStyle.BorderForeground(lipgloss.Color("212"))
	paneDragging    = paneStyle.BorderForeground(lipgloss.Color("205")).Border(lipgloss.DoubleBorder())
	paneHidden      = paneStyle.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240"))
	captionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	armedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	invalidStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	statusBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	editBadgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Padding(0, 1)
	warnStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
