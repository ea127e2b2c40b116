package viz

import (
	"fmt"
	"image"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/metrics"
	"github.com/san-kum/ndviplay/internal/playback"
)

const historyCapacity = 120

var (
	paneStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	heldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	pickStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	pickerHelp  = "arrows/hjkl:move HJKL:jump space:anchor enter:commit esc:cancel"
	emptyMarker = "(no frame)"
)

type frameMsg struct {
	window  string
	preview *Preview
}

type statusMsg playback.Status

type pickMsg struct {
	window string
}

type model struct {
	keys     chan<- playback.Key
	picks    chan<- frame.Region
	windows  []string
	previews map[string]*Preview
	status   playback.Status
	history  *metrics.History
	picking  *picker
}

func newModel(windows []string, keys chan<- playback.Key, picks chan<- frame.Region) model {
	return model{
		keys:     keys,
		picks:    picks,
		windows:  windows,
		previews: make(map[string]*Preview),
		history:  metrics.NewHistory(historyCapacity),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.picking != nil {
			m.updatePicker(msg.String())
			return m, nil
		}
		m.forward(playback.Key(msg.String()))
	case frameMsg:
		m.previews[msg.window] = msg.preview
	case statusMsg:
		m.status = playback.Status(msg)
		m.history.Push(msg.Metrics["mean"])
	case pickMsg:
		p := m.previews[msg.window]
		if p == nil || p.Cols() == 0 {
			m.commit(frame.Unset)
			return m, nil
		}
		m.picking = newPicker(msg.window, p)
	}
	return m, nil
}

// forward hands a key to the controller, dropping it when the controller
// is not keeping up.
func (m *model) forward(k playback.Key) {
	select {
	case m.keys <- k:
	default:
	}
}

func (m *model) commit(r frame.Region) {
	m.picking = nil
	select {
	case m.picks <- r:
	default:
	}
}

func (m *model) updatePicker(key string) {
	p := m.picking
	switch key {
	case "left", "h":
		p.move(-1, 0)
	case "right", "l":
		p.move(1, 0)
	case "up", "k":
		p.move(0, -1)
	case "down", "j":
		p.move(0, 1)
	case "H":
		p.move(-5, 0)
	case "L":
		p.move(5, 0)
	case "K":
		p.move(0, -5)
	case "J":
		p.move(0, 5)
	case " ":
		p.setAnchor()
	case "enter":
		m.commit(p.region())
	case "esc", "c":
		m.commit(frame.Unset)
	}
}

func (m model) View() string {
	panes := make([]string, 0, len(m.windows))
	for _, w := range m.windows {
		body := emptyMarker
		if p := m.previews[w]; p != nil && p.Cols() > 0 {
			sel, cursor := image.Rectangle{}, image.Point{-1, -1}
			if m.picking != nil && m.picking.window == w {
				sel, cursor = m.picking.cells(), m.picking.cursor
			}
			body = p.Render(sel, cursor)
		}
		panes = append(panes, paneStyle.Render(titleStyle.Render(w)+"\n"+body))
	}
	views := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Left, views, statsStyle.Render(m.statusView()))
}

func (m model) statusView() string {
	st := m.status
	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	if st.Len > 0 {
		row("File", st.Path)
		row("Frame", fmt.Sprintf("%d/%d", st.Cursor+1, st.Len))
	}
	row("Mode", st.Mode.String())
	row("Baseline", st.Region.String())
	if st.Hold {
		s.WriteString(heldStyle.Render("HELD") + "\n")
	}

	names := make([]string, 0, len(st.Metrics))
	for k := range st.Metrics {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		row(k, fmt.Sprintf("%+.3f", st.Metrics[k]))
	}

	if m.history.Len() > 1 {
		chart := asciigraph.Plot(m.history.Values(), asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("mean index"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.picking != nil {
		s.WriteString(pickStyle.Render("PICK BASELINE") + "\n")
		s.WriteString(helpStyle.Render(pickerHelp))
	} else {
		s.WriteString(helpStyle.Render(strings.TrimSpace(st.Help + " ctrl+c:exit")))
	}
	return s.String()
}
