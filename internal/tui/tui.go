// Package tui is the interactive hand viewer: it deals sample opening
// hands on demand so a player can get a feel for what the probabilities
// look like in practice.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/firsthand/internal/catalog"
	"github.com/lox/firsthand/internal/handsample"
)

// Dealer draws a fresh opening hand. The model calls it once at start
// and again on every redraw.
type Dealer func() []handsample.Slot

// Model is the Bubble Tea model for the hand viewer
type Model struct {
	dealer Dealer
	logger *log.Logger

	// UI components
	viewport viewport.Model

	// State
	slots    []handsample.Slot
	draws    int
	quitting bool

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode bool
}

// NewModel creates a hand viewer model
func NewModel(dealer Dealer, logger *log.Logger) *Model {
	return NewModelWithOptions(dealer, logger, false)
}

// NewModelWithOptions creates a hand viewer model with test mode option
func NewModelWithOptions(dealer Dealer, logger *log.Logger, testMode bool) *Model {
	// Minimal initial size; resized when WindowSizeMsg arrives
	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		dealer:   dealer,
		logger:   logger.WithPrefix("tui"),
		viewport: vp,
		testMode: testMode,
	}
	m.redraw()
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.Debug("updating dimensions", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "r", "enter":
			m.redraw()
		case "up", "k":
			m.viewport.ScrollUp(1)
		case "down", "j":
			m.viewport.ScrollDown(1)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := HeaderStyle.Render(fmt.Sprintf(" Opening Hand (draw #%d) ", m.draws))
	help := HelpStyle.Render("r redraw • ↑↓ scroll • q quit")

	m.viewport.SetContent(m.renderHand())

	calculatedWidth := m.width - 2
	calculatedHeight := m.height - lipgloss.Height(header) - lipgloss.Height(help) - 4
	if calculatedWidth < 1 {
		calculatedWidth = 1
	}
	if calculatedHeight < 1 {
		calculatedHeight = 1
	}
	m.viewport.Width = calculatedWidth
	m.viewport.Height = calculatedHeight

	if !m.initialized && calculatedWidth > 1 && calculatedHeight > 1 {
		m.viewport.GotoTop()
		m.initialized = true
	}

	handStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(calculatedWidth).
		Height(calculatedHeight)

	return lipgloss.JoinVertical(lipgloss.Top, header, handStyle.Render(m.viewport.View()), help)
}

// redraw deals a fresh hand
func (m *Model) redraw() {
	m.slots = m.dealer()
	m.draws++
	m.logger.Debug("dealt hand", "draw", m.draws, "cards", len(m.slots))
}

// renderHand renders the current hand, one card per block
func (m *Model) renderHand() string {
	var b strings.Builder
	for i, slot := range m.slots {
		if i > 0 {
			b.WriteString("\n")
		}
		if slot.Blank {
			b.WriteString(BlankStyle.Render("(other card)"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(CardNameStyle.Render(slot.Name))
		if slot.Card != nil {
			b.WriteString("  ")
			b.WriteString(categoryStyle(slot.Card.Category).Render(slot.Card.Category.String()))
			if slot.Card.Text != "" {
				b.WriteString("\n")
				b.WriteString(BlankStyle.Render(truncate(slot.Card.Text, 200)))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func categoryStyle(c catalog.Category) lipgloss.Style {
	switch c {
	case catalog.Spell:
		return SpellStyle
	case catalog.Trap:
		return TrapStyle
	default:
		return MonsterStyle
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Slots returns the currently dealt hand (test mode only)
func (m *Model) Slots() []handsample.Slot {
	if !m.testMode {
		return nil
	}
	out := make([]handsample.Slot, len(m.slots))
	copy(out, m.slots)
	return out
}

// Draws returns how many hands have been dealt
func (m *Model) Draws() int {
	return m.draws
}

// IsTestMode returns whether the viewer is in test mode
func (m *Model) IsTestMode() bool {
	return m.testMode
}
