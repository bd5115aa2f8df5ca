package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/wayfarer/pkg/narrative"
)

// View renders the entire TUI interface.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	switch m.mode {
	case modePhotoPicker:
		return m.overlayView(m.renderPhotoPicker())
	case modeDocument:
		return m.overlayView(m.renderDocument())
	}

	header := m.buildHeader()
	tips := m.buildTips()
	status := m.buildStatusBar()
	captureLine := m.buildCaptureLine()
	bottom := m.buildToastLine()

	sections := []string{header, tips, status, "", m.viewport.View()}
	if captureLine != "" {
		sections = append(sections, captureLine)
	}
	if m.mode == modeNote {
		sections = append(sections, inputBoxStyle.Width(m.width-4).Render(m.textarea.View()))
	}
	sections = append(sections, bottom)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// buildHeader renders the Wayfarer banner.
func (m *model) buildHeader() string {
	return headerStyle.Render(`
	██╗    ██╗ █████╗ ██╗   ██╗███████╗ █████╗ ██████╗ ███████╗██████╗
	██║    ██║██╔══██╗╚██╗ ██╔╝██╔════╝██╔══██╗██╔══██╗██╔════╝██╔══██╗
	██║ █╗ ██║███████║ ╚████╔╝ █████╗  ███████║██████╔╝█████╗  ██████╔╝
	██║███╗██║██╔══██║  ╚██╔╝  ██╔══╝  ██╔══██║██╔══██╗██╔══╝  ██╔══██╗
	╚███╔███╔╝██║  ██║   ██║   ██║     ██║  ██║██║  ██║███████╗██║  ██║
	 ╚══╝╚══╝ ╚═╝  ╚═╝   ╚═╝   ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`)
}

// buildTips renders context-sensitive usage tips.
func (m *model) buildTips() string {
	if m.mode == modeNote {
		return tipsStyle.Render("  Note: Enter to save • Alt+Enter for new line • Esc to cancel")
	}
	if m.ctrl.Recording() {
		return tipsStyle.Render("  Recording: v to stop and save • speech is transcribed live below")
	}
	return tipsStyle.Render("  Tips: p photo • v voice • n note • d delete • g generate narrative • o open narrative • q quit")
}

// buildStatusBar renders the current waypoint and timeline summary.
func (m *model) buildStatusBar() string {
	wp := m.ctrl.CurrentWaypoint()
	count := len(m.ctrl.Entries())
	status := fmt.Sprintf(" Now at: %s (%s)  •  %d memories",
		wp.Name, narrative.FormatCoords(wp.Lat, wp.Lng), count)
	if m.pendingSyntheses > 0 {
		status += fmt.Sprintf("  •  %s weaving narrative...", m.spinner.View())
	}
	return statusBarStyle.Render(status)
}

// buildCaptureLine renders the live recording banner with interim captions.
func (m *model) buildCaptureLine() string {
	if !m.ctrl.Recording() {
		return ""
	}
	state := m.ctrl.Transcription()
	caption := state.Final
	if state.Interim != "" {
		caption += state.Interim
	}
	if strings.TrimSpace(caption) == "" {
		caption = "listening..."
	}
	return recordingStyle.Render(fmt.Sprintf("  ● REC %s ", m.spinner.View())) +
		captionStyle.Render(truncate(caption, m.width-14))
}

// buildToastLine renders the transient status line, or a quiet footer.
func (m *model) buildToastLine() string {
	if m.toast != nil {
		style := toastStyle
		if m.toast.isError {
			style = toastErrorStyle
		}
		return style.Render("  " + m.toast.message)
	}
	return statusBarStyle.Render("~/wayfarer")
}

// overlayView centers a panel over a dimmed base layout.
func (m *model) overlayView(panel string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		overlayStyle.MaxWidth(m.width-4).Render(panel))
}

// renderPhotoPicker renders the photo selection list.
func (m *model) renderPhotoPicker() string {
	var b strings.Builder
	b.WriteString(docTitleStyle.Render("Pick a photo"))
	b.WriteString("\n\n")

	if len(m.photoFiles) == 0 {
		b.WriteString(tipsStyle.Render(fmt.Sprintf("No photos found in %s", m.cfg.Photos.Dir)))
	}
	for i, f := range m.photoFiles {
		cursor := "  "
		style := entryBodyStyle
		if i == m.photoCursor {
			cursor = "> "
			style = selectedStyle
		}
		b.WriteString(style.Render(cursor + f))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tipsStyle.Render("Enter to capture • Esc to cancel"))
	return b.String()
}

// renderDocument renders the synthesized travelogue.
func (m *model) renderDocument() string {
	doc := m.doc
	if doc == nil {
		return tipsStyle.Render("No narrative to show")
	}

	var b strings.Builder
	b.WriteString(docTitleStyle.Render(doc.Title))
	b.WriteString("\n")
	b.WriteString(tipsStyle.Render(doc.GeneratedAt.Format("January 2, 2006")))
	b.WriteString("\n\n")

	b.WriteString(waypointStyle.Render("Route: " + strings.Join(doc.Route, " → ")))
	b.WriteString("\n")
	b.WriteString(docLinkStyle.Render(doc.RouteLink))
	b.WriteString("\n\n")

	for _, s := range doc.Sections {
		b.WriteString(waypointStyle.Render("◆ " + s.WaypointName))
		b.WriteString("\n")
		b.WriteString(entryBodyStyle.Render(s.Body))
		b.WriteString("\n")
		b.WriteString(docLinkStyle.Render(s.MapLink))
		b.WriteString("\n\n")
	}

	b.WriteString(tipsStyle.Render("c copy route link • g regenerate • x dismiss • Esc back"))
	return b.String()
}
