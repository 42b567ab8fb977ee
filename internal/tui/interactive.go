// Package tui is an interactive terminal view of the coil field: the
// field-line picture re-renders as parameters change, reusing the builder
// cache when they do not.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/config"
	"github.com/san-kum/coilsim/internal/fieldlines"
	"github.com/san-kum/coilsim/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type param struct {
	name string
	unit string
	step float64
	min  float64
}

var params = []param{
	{name: "current", unit: "A", step: 0.5, min: 0.5},
	{name: "turns", unit: "", step: 10, min: 1},
	{name: "length", unit: "m", step: 0.01, min: 0.01},
	{name: "radius", unit: "m", step: 0.005, min: 0.005},
}

type model struct {
	values  map[string]float64
	cursor  int
	editing bool
	editBuf string

	builder *fieldlines.Builder

	width  int
	height int
}

func newModel(cfg *config.Config) *model {
	return &model{
		values: map[string]float64{
			"current": cfg.Current,
			"turns":   float64(cfg.Turns),
			"length":  cfg.Length,
			"radius":  cfg.Radius,
		},
		builder: fieldlines.NewBuilder(),
		width:   80,
		height:  24,
	}
}

func (m *model) geometry() coil.Geometry {
	return coil.Geometry{
		Radius:  m.values["radius"],
		Length:  m.values["length"],
		Turns:   int(m.values["turns"]),
		Current: m.values["current"],
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				p := params[m.cursor]
				if v >= p.min {
					m.setValue(p.name, v)
				}
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			s := msg.String()
			if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.') {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(params)-1 {
			m.cursor++
		}
	case "left", "h":
		p := params[m.cursor]
		v := m.values[p.name] - p.step
		if v < p.min {
			v = p.min
		}
		m.setValue(p.name, v)
	case "right", "l":
		p := params[m.cursor]
		m.setValue(p.name, m.values[p.name]+p.step)
	case "e", "enter":
		m.editing = true
		m.editBuf = ""
	}
	return m, nil
}

// setValue updates one parameter. The builder's cache key is
// (current, turns, length) — radius is assumed fixed per instance — so a
// radius edit swaps in a fresh builder instead of trusting the cache.
func (m *model) setValue(name string, v float64) {
	if name == "radius" && v != m.values[name] {
		m.builder = fieldlines.NewBuilder()
	}
	m.values[name] = v
}

func (m *model) View() string {
	g := m.geometry()
	lines := m.builder.Compute(g)

	canvasW := m.width - 26
	if canvasW < 20 {
		canvasW = 20
	}
	canvasH := m.height - 3
	if canvasH < 8 {
		canvasH = 8
	}

	extent := 1.2 * g.Length
	view := viz.NewFieldView(canvasW, canvasH, extent, extent)
	for _, line := range lines {
		view.DrawStreamline(line)
	}
	view.DrawCoil(g)

	var panel strings.Builder
	panel.WriteString(cyan.Render("solenoid field") + "\n\n")
	for i, p := range params {
		marker := "  "
		style := dim
		if i == m.cursor {
			marker = white.Render("> ")
			style = white
		}
		val := m.values[p.name]
		var valStr string
		if p.name == "turns" {
			valStr = fmt.Sprintf("%d", int(val))
		} else {
			valStr = fmt.Sprintf("%.3f", val)
		}
		if i == m.cursor && m.editing {
			valStr = yellow.Render(m.editBuf + "_")
		}
		panel.WriteString(fmt.Sprintf("%s%s %s %s\n",
			marker, style.Render(p.name), valStr, dim.Render(p.unit)))
	}

	b := g.FieldAt(0, 0)
	panel.WriteString("\n")
	panel.WriteString(green.Render(fmt.Sprintf("Bz(0,0) %.3f mT", b.Bz*1e3)) + "\n")
	panel.WriteString(dim.Render(fmt.Sprintf("ideal   %.3f mT", g.IdealBz()*1e3)) + "\n")
	panel.WriteString(dim.Render(fmt.Sprintf("lines   %d", len(lines))) + "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, view.String(), panel.String())
	help := dim.Render("arrows adjust · e edit · q quit")
	return body + "\n" + help
}

// RunInteractive starts the TUI with cfg's coil as the initial state.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
