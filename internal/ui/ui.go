// Package ui owns the terminal: the bubbletea program puts stdin into raw
// mode for the duration of the run (restoring it on every exit path), redraws
// the dashboard as samples arrive, and quits on Enter.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"termistat/internal/config"
	"termistat/internal/model"
	"termistat/internal/probe"
	"termistat/internal/sampler"
)

// Model renders live samples from the sampler.
type Model struct {
	cfg       config.Config
	latest    model.Sample
	stream    <-chan model.Sample
	ctxCancel context.CancelFunc
}

func New(cfg config.Config) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	s := sampler.New(probe.New(), cfg.Interval, cfg.Wireless)
	return newModel(cfg, s.Stream(ctx), cancel)
}

func newModel(cfg config.Config, stream <-chan model.Sample, cancel context.CancelFunc) *Model {
	return &Model{
		cfg:       cfg,
		latest:    model.Zero(),
		stream:    stream,
		ctxCancel: cancel,
	}
}

type tickMsg struct{}

// The redraw tick runs faster than the sample interval so a fresh sample is
// never stale on screen for long.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/5, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q", "ctrl+c":
			m.ctxCancel()
			return m, tea.Quit
		}
	case tickMsg:
		select {
		case samp, ok := <-m.stream:
			if ok {
				m.latest = samp
			}
		default:
		}
		return m, tickCmd()
	}
	return m, nil
}

func (m *Model) View() string {
	s := m.latest
	header := bannerStyle.Render("*** TermiStat ***")
	if s.Host.Hostname != "" {
		header += "  " + subtleStyle.Render(s.Host.Hostname+" up "+formatUptime(s.Host.Uptime))
	}
	hint := subtleStyle.Render("Press ENTER to quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		hint,
		"",
		renderSections(s, m.cfg.BarWidth),
	) + "\n"
}

func formatUptime(d time.Duration) string {
	return d.Truncate(time.Second).String()
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(cfg config.Config) error {
	prog := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
