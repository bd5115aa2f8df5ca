// Package tui provides the terminal presentation layer for Wayfarer: the
// timeline view, capture actions, live transcription captions, and the
// narrative document overlay.
//
// The codebase follows the usual Bubble Tea file split:
//   - executor.go: program lifecycle
//   - model.go: model structure and message types
//   - init.go: initialization
//   - update.go: event handling
//   - view.go: rendering
//   - helpers.go: formatting utilities
//   - styles.go: colors and styles
//
// All core state mutation happens inside Update, which Bubble Tea runs on
// a single goroutine; asynchronous sources (recognizer segments, resolved
// documents) enter the loop as messages.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/wayfarer/pkg/config"
	"github.com/entrhq/wayfarer/pkg/journal"
	"github.com/entrhq/wayfarer/pkg/logging"
)

// Executor runs the interactive Wayfarer session.
type Executor struct {
	ctrl *journal.Controller
	cfg  *config.Config
	log  *logging.Logger
}

// NewExecutor creates a TUI executor over the given controller.
func NewExecutor(ctrl *journal.Controller, cfg *config.Config, log *logging.Logger) *Executor {
	return &Executor{ctrl: ctrl, cfg: cfg, log: log}
}

// Run starts the TUI and blocks until the user exits.
func (e *Executor) Run(ctx context.Context) error {
	matcher, err := config.NewPhotoMatcher(e.cfg.Photos.Patterns)
	if err != nil {
		return fmt.Errorf("failed to compile photo patterns: %w", err)
	}

	m := initialModel()
	m.ctrl = e.ctrl
	m.cfg = e.cfg
	m.log = e.log
	m.photoMatcher = matcher

	program := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}
	return nil
}
