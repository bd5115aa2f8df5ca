package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// initialModel builds the TUI model with its components configured.
func initialModel() model {
	ta := textarea.New()
	ta.Placeholder = "Write a note about this place..."
	ta.Prompt = "│ "
	ta.CharLimit = 500
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		viewport: vp,
		textarea: ta,
		spinner:  sp,
		mode:     modeTimeline,
	}
}

// Init starts the spinner and the movement tick.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd())
}

// tickCmd schedules the next periodic re-render.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
