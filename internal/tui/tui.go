// Package tui is the interactive terminal front end: a file picker, a submit
// action and a scrollable result view over one workflow.Controller.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spigell/cv-matcher/internal/logger"
	"github.com/spigell/cv-matcher/internal/present"
	"github.com/spigell/cv-matcher/internal/selection"
	"github.com/spigell/cv-matcher/internal/workflow"
)

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, ctrl *workflow.Controller, dir string, log *zap.Logger) error {
	program := tea.NewProgram(New(ctx, ctrl, dir, log), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model. All workflow transitions start from Update;
// only the network call runs in a command goroutine.
type Model struct {
	ctx      context.Context
	ctrl     *workflow.Controller
	logger   *zap.Logger
	renderer *present.Renderer

	picker   filepicker.Model
	picking  bool
	spinner  spinner.Model
	viewport viewport.Model
	ready    bool
	notice   string
}

// resolvedMsg carries the state reached once an attempt resolves.
type resolvedMsg struct {
	state workflow.State
}

func New(ctx context.Context, ctrl *workflow.Controller, dir string, log *zap.Logger) Model {
	fp := filepicker.New()
	fp.AllowedTypes = selection.AcceptedExtensions
	if dir != "" {
		fp.CurrentDirectory = dir
	}

	renderer := present.NewRenderer(0)
	renderer.Controls = true

	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		logger:   logger.WithFields(log),
		renderer: renderer,
		picker:   fp,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: viewport.New(0, 0),
	}
	m.refresh()

	return m
}

func (m Model) Init() tea.Cmd {
	return m.picker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer.SetWidth(msg.Width)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 1
		m.ready = true
		m.refresh()

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)

	case resolvedMsg:
		m.logger.Debug("attempt resolved", zap.String("state", msg.state.Name()))
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd
	}

	return m.updatePicker(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "o":
		m.picking = true
		m.notice = ""
		return m, nil
	case "enter", "s":
		return m.submit()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.picking && key.String() == "esc" {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.selectPath(path)
	}

	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.notice = fmt.Sprintf("%s is not a supported document type", path)
	}

	return m, cmd
}

func (m *Model) selectPath(path string) {
	file, err := selection.Open(path)
	if err != nil {
		m.logger.Warn("opening selected file", zap.Error(err))
		m.notice = "Could not read the selected file."
		return
	}

	m.notice = ""
	m.ctrl.SelectFile(file)
	m.refresh()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	attempt, err := m.ctrl.Begin()
	if err != nil {
		m.logger.Debug("submit rejected", zap.Error(err))
		m.refresh()
		return m, nil
	}

	m.refresh()

	ctx, ctrl := m.ctx, m.ctrl
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return resolvedMsg{state: ctrl.Execute(ctx, attempt)}
		},
	)
}

func (m *Model) refresh() {
	m.renderer.BusyGlyph = m.spinner.View()
	m.viewport.SetContent(m.render())
}

func (m Model) render() string {
	return m.renderer.Render(present.Present(m.ctrl.State(), m.ctrl.Selection().Current()))
}

func (m Model) View() string {
	if m.picking {
		return "Choose a CV file (esc to cancel)\n\n" + m.picker.View() + "\n" + m.notice
	}

	body := m.render()
	if m.ready {
		body = m.viewport.View()
	}

	if m.notice != "" {
		body += "\n" + m.notice
	}

	return body
}
