package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/diffsim/internal/diffusion"
	"github.com/san-kum/diffsim/internal/grid"
)

type TickMsg time.Time

// Model is the live diffusion view: one sweep per frame, with the field
// rendered as an asciigraph profile.
type Model struct {
	field   grid.Field
	initial grid.Field
	dt      float64
	t       float64
	sweeps  int
	fps     int

	buffered bool
	running  bool
	err      error
}

func NewModel(f grid.Field, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		field:   f,
		initial: f.Clone(),
		dt:      dt,
		fps:     fps,
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "b":
			m.buffered = !m.buffered
		case "+", "=":
			m.dt *= 1.25
		case "-", "_":
			m.dt *= 0.8
		}
	case TickMsg:
		if m.running && m.err == nil {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	var err error
	if m.buffered {
		err = diffusion.SweepBuffered(m.field, m.dt)
	} else {
		err = diffusion.Sweep(m.field, m.dt)
	}
	if err != nil {
		m.err = err
		return
	}
	m.t += m.dt
	m.sweeps++

	if !m.field.IsValid() {
		m.err = fmt.Errorf("field diverged at t=%.4f (dt above the stable limit?)", m.t)
	}
}

func (m *Model) reset() {
	m.field = m.initial.Clone()
	m.t = 0
	m.sweeps = 0
	m.err = nil
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(headerStyle.Render("DIFFUSION") + "\n")

	s.WriteString(graphStyle.Render(Profile(m.field, "field profile")))
	s.WriteString("\n\n")

	scheme := "inplace"
	if m.buffered {
		scheme = "buffered"
	}
	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}

	_, peak := m.field.Peak()
	rows := []struct{ label, value string }{
		{"status", status},
		{"scheme", scheme},
		{"time", fmt.Sprintf("%.3f", m.t)},
		{"dt", fmt.Sprintf("%.4f", m.dt)},
		{"sweeps", fmt.Sprintf("%d", m.sweeps)},
		{"mass", fmt.Sprintf("%.6f", m.field.Sum())},
		{"peak", fmt.Sprintf("%.6f", peak)},
	}
	for _, row := range rows {
		s.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
	}

	if m.dt > diffusion.MaxStableStep {
		s.WriteString(warnStyle.Render(fmt.Sprintf("dt %.4f exceeds stable limit %.2f", m.dt, diffusion.MaxStableStep)) + "\n")
	}
	if m.err != nil {
		s.WriteString(warnStyle.Render(m.err.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("space pause · r reset · b scheme · +/- dt · q quit"))
	return canvasStyle.Render(s.String())
}
