package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voltdeck/voltdeck/internal/automation"
	"github.com/voltdeck/voltdeck/internal/catalog"
	"github.com/voltdeck/voltdeck/internal/layout"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// formatPower renders watts in the site's usual magnitudes.
func formatPower(w float64) string {
	if w < 0 {
		return "-" + formatPower(-w)
	}
	if w < 1000 {
		return fmt.Sprintf("%.0f W", w)
	}
	return fmt.Sprintf("%.2f kW", w/1000)
}

// sparkline scales samples into block runes, newest at the right edge.
func sparkline(samples []float64, width int) string {
	if width <= 0 || len(samples) == 0 {
		return ""
	}
	if len(samples) > width {
		samples = samples[len(samples)-width:]
	}
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	var b strings.Builder
	for _, v := range samples {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

func (a *App) renderBody(inst layout.Instance, width int) string {
	switch inst.Type {
	case catalog.TypeLoad:
		return valueStyle.Render(formatPower(a.overview.LoadW)) + "\n" +
			captionStyle.Render("current draw")
	case catalog.TypePV:
		return valueStyle.Render(formatPower(a.overview.PVPowerW)) + "\n" +
			captionStyle.Render("generating")
	case catalog.TypeBattery:
		state := "idle"
		if a.overview.BatteryW > 0 {
			state = "discharging " + formatPower(a.overview.BatteryW)
		} else if a.overview.BatteryW < 0 {
			state = "charging " + formatPower(-a.overview.BatteryW)
		}
		return valueStyle.Render(fmt.Sprintf("%.0f%%", a.overview.BatterySoC*100)) + "\n" +
			captionStyle.Render(state)
	case catalog.TypeGrid:
		dir := "importing"
		w := a.overview.GridW
		if w < 0 {
			dir = "exporting"
			w = -w
		}
		return valueStyle.Render(formatPower(w)) + "\n" + captionStyle.Render(dir)
	case catalog.TypeChart:
		return sparkline(a.overview.History, width) + "\n" +
			captionStyle.Render("load, recent samples")
	case catalog.TypeAutomations:
		evaluated := automation.Evaluate(a.rules, a.overview)
		if len(evaluated) == 0 {
			return captionStyle.Render("no rules configured")
		}
		lines := make([]string, 0, len(evaluated))
		for _, ev := range evaluated {
			dot := captionStyle.Render("○")
			switch ev.Status {
			case automation.StatusArmed:
				dot = armedStyle.Render("●")
			case automation.StatusInvalid:
				dot = invalidStyle.Render("✕")
			}
			lines = append(lines, fmt.Sprintf("%s %s %s", dot, ev.Rule.Name,
				captionStyle.Render(ev.Status.String())))
		}
		return strings.Join(lines, "\n")
	case catalog.TypeDER:
		if len(a.overview.DERs) == 0 {
			return captionStyle.Render("no devices reporting")
		}
		lines := make([]string, 0, len(a.overview.DERs))
		for _, d := range a.overview.DERs {
			lines = append(lines, fmt.Sprintf("%-12s %-10s %-9s %8s",
				d.Serial, d.Make, d.Kind, formatPower(d.PowerW)))
		}
		return strings.Join(lines, "\n")
	default:
		return captionStyle.Render("no content")
	}
}

func (a *App) renderPane(p paneGeom) string {
	inst := p.Inst
	style := paneStyle
	switch {
	case a.mover.Dragging() && a.mover.Source() == inst.ID:
		style = paneDragging
	case a.editor.Editing() && a.cursorID() == inst.ID:
		style = paneSelected
	case a.editor.Hidden(inst.ID):
		style = paneHidden
	}

	header := titleStyle.Render(inst.Title)
	if a.editor.Editing() {
		tag := string(inst.Size)
		if a.editor.Hidden(inst.ID) {
			tag += " · hidden"
		}
		header += " " + captionStyle.Render("["+tag+"]")
	}

	content := header + "\n" + a.renderBody(inst, p.W-4)
	return style.Width(p.W - 2).Height(p.H - 2).Render(content)
}

func (a *App) renderPanes() string {
	if len(a.panes) == 0 {
		return captionStyle.Render("dashboard is empty — press e, then a to add widgets")
	}
	var rows []string
	var row []string
	rowY := a.panes[0].Y
	for _, p := range a.panes {
		if p.Y != rowY {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
			rowY = p.Y
		}
		row = append(row, a.renderPane(p))
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderModal() string {
	switch a.modal {
	case modalAddWidget:
		var b strings.Builder
		b.WriteString(titleStyle.Render(a.picker.title) + "\n")
		b.WriteString("filter: " + a.picker.Query() + "\n\n")
		items := a.picker.Items()
		if len(items) == 0 {
			b.WriteString(captionStyle.Render("nothing matches"))
		}
		for i, item := range items {
			prefix := "  "
			if i == a.picker.Cursor() {
				prefix = cursorStyle.Render("> ")
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, item.Label,
				captionStyle.Render(item.Meta)))
		}
		return modalStyle.Render(strings.TrimRight(b.String(), "\n"))
	case modalConfirmReset:
		return modalStyle.Render(titleStyle.Render("Reset layout?") + "\n" +
			"Restores the default widgets and clears the saved arrangement.\n" +
			captionStyle.Render("y confirm · n/esc keep editing"))
	default:
		return ""
	}
}

func (a *App) View() string {
	header := titleStyle.Render(a.cfg.Site.Name + " · voltdeck")
	if a.editor.Editing() {
		header += " " + editBadgeStyle.Render("EDIT")
	}

	body := header + "\n" + a.renderPanes()
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}

	status := a.status
	if a.warning {
		status = warnStatusStyle.Render(status)
	}

	footer := renderHelp(a.helpBindings())
	return body + "\n" + statusBarStyle.Render(status) + "\n" + footerStyle.Render(footer)
}
