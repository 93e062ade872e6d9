// Package ui provides styled terminal rendering and an interactive layer
// browser built on Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-pyramid/internal/pyramid"
	"github.com/litescript/ls-pyramid/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewLayers ViewMode = iota
	ViewSky
)

const viewCount = 2

// Model is the root Bubble Tea model. It browses a pyramid without
// modifying it.
type Model struct {
	pyramid *pyramid.Pyramid
	source  string

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	selected int

	skyView SkyViewModel
}

// New creates a browser over p. source labels the header (usually the
// file the pyramid was imported from).
func New(p *pyramid.Pyramid, source string) Model {
	return Model{
		pyramid:  p,
		source:   source,
		viewMode: ViewLayers,
		skyView:  NewSkyViewModel(p),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "1", "l":
			m.viewMode = ViewLayers
		case "2", "s":
			m.viewMode = ViewSky
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount
		case "up", "k":
			m = m.selectLayer(m.selected - 1)
		case "down", "j":
			m = m.selectLayer(m.selected + 1)
		case "home", "g":
			m = m.selectLayer(0)
		case "end", "G":
			m = m.selectLayer(m.pyramid.LayerCount() - 1)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header 2 lines, footer 2 lines
		m.skyView = m.skyView.SetSize(msg.Width, msg.Height-4)
	}

	return m, nil
}

// selectLayer moves the selection, clamped to the layer range.
func (m Model) selectLayer(i int) Model {
	n := m.pyramid.LayerCount()
	if n == 0 {
		m.selected = 0
		return m
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	m.selected = i
	m.skyView = m.skyView.SetFocus(i)
	return m
}

// Selected returns the index of the selected layer.
func (m Model) Selected() int {
	return m.selected
}

// Mode returns the active view.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewLayers:
		content = m.renderLayers()
	case ViewSky:
		content = m.skyView.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("ls-pyramid")
	ver := mutedStyle.Render("v" + version.Version)

	var summary string
	if st, ok := m.pyramid.Statistics(); ok {
		summary = fmt.Sprintf("%d stars · %d layers · mag %.1f–%.1f",
			st.TotalStars, st.TotalLayers, st.Magnitude.Min, st.Magnitude.Max)
	} else {
		summary = fmt.Sprintf("%d layers · no flat star data", m.pyramid.LayerCount())
	}

	parts := []string{title, ver}
	if m.source != "" {
		parts = append(parts, accentStyle.Render(m.source))
	}
	parts = append(parts, mutedStyle.Render(summary))
	return strings.Join(parts, " | ")
}

func (m Model) renderFooter() string {
	return mutedStyle.Render("[1]layers [2]sky [tab]switch [↑↓/jk]select layer [q]quit")
}

func (m Model) renderLayers() string {
	n := m.pyramid.LayerCount()
	if n == 0 {
		return "No stars in pyramid"
	}

	var list strings.Builder
	list.WriteString(headerStyle.Render("Layers"))
	list.WriteString("\n")
	for i := 0; i < n; i++ {
		label := fmt.Sprintf("Layer %d (%d)", i+1, len(m.pyramid.Layer(i)))
		if i == m.selected {
			list.WriteString(accentStyle.Render("> " + label))
		} else {
			list.WriteString(mutedStyle.Render("  " + label))
		}
		if i < n-1 {
			list.WriteString("\n")
		}
	}

	var detail strings.Builder
	detail.WriteString(headerStyle.Render(fmt.Sprintf("Layer %d", m.selected+1)))
	detail.WriteString("\n")
	stars := m.pyramid.Layer(m.selected)
	if len(stars) == 0 {
		detail.WriteString(mutedStyle.Render("(empty layer)"))
	}
	for i, s := range stars {
		detail.WriteString(renderStarLine(s))
		if i < len(stars)-1 {
			detail.WriteString("\n")
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(list.String()),
		" ",
		paneStyle.Render(detail.String()),
	)
}
