package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hopsim/internal/hopfield"
	"github.com/san-kum/hopsim/internal/viz"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	rasterStyle = lipgloss.NewStyle().Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	stableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives one network interactively, one asynchronous sweep per tick.
type Model struct {
	net           *hopfield.Network
	gen           *hopfield.StateGenerator
	state         hopfield.State
	sweep         int
	running       bool
	energyHistory []float64
	unstable      int
	stable        bool
}

func NewModel(net *hopfield.Network, gen *hopfield.StateGenerator) Model {
	m := Model{
		net:           net,
		gen:           gen,
		state:         gen.NextState(),
		running:       true,
		energyHistory: make([]float64, 0, historyCapacity),
	}
	m.measure()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			m.step()
		case "r":
			m.reset()
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	m.state = m.net.UpdateState(m.state)
	m.sweep++
	m.measure()
	if m.stable {
		m.running = false
	}
}

func (m *Model) measure() {
	m.energyHistory = append(m.energyHistory, m.net.StateEnergy(m.state))
	if len(m.energyHistory) > historyCapacity {
		m.energyHistory = m.energyHistory[1:]
	}
	m.unstable = hopfield.CountUnstable(m.net.AllUnitEnergies(m.state))
	m.stable = m.net.IsStable(m.state)
}

func (m *Model) reset() {
	m.state = m.gen.NextState()
	m.sweep = 0
	m.running = true
	m.energyHistory = m.energyHistory[:0]
	m.measure()
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("HOPFIELD %s d=%d", strings.ToUpper(m.net.Domain().String()), m.net.Dimension())) + "\n")

	status := "RELAXING"
	if m.stable {
		status = stableStyle.Render("STABLE")
	} else if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n")

	s.WriteString(rasterStyle.Render(viz.StateRaster(m.state)) + "\n")

	if len(m.energyHistory) > 1 {
		chart := asciigraph.Plot(m.energyHistory, asciigraph.Height(5), asciigraph.Width(40), asciigraph.Caption("Energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	energy := 0.0
	if len(m.energyHistory) > 0 {
		energy = m.energyHistory[len(m.energyHistory)-1]
	}
	s.WriteString(labelStyle.Render("Sweep") + valueStyle.Render(fmt.Sprintf("%d", m.sweep)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.4f", energy)) + "\n")
	s.WriteString(labelStyle.Render("Unstable") + valueStyle.Render(fmt.Sprintf("%d / %d", m.unstable, m.net.Dimension())) + "\n")
	s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.net.Seed())) + "\n")

	s.WriteString(helpStyle.Render("SP:Pause S:Step R:New state Q:Quit"))
	return s.String()
}
