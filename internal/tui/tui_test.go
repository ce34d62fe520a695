package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/firsthand/internal/handsample"
)

func testDealer() (Dealer, *int) {
	calls := 0
	return func() []handsample.Slot {
		calls++
		return []handsample.Slot{
			{Name: "Ash Blossom & Joyous Spring"},
			{Blank: true},
		}
	}, &calls
}

func TestHandViewer(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests

	t.Run("deals a hand on creation", func(t *testing.T) {
		dealer, calls := testDealer()
		m := NewModelWithOptions(dealer, logger, true)

		assert.True(t, m.IsTestMode())
		assert.Equal(t, 1, *calls)
		assert.Equal(t, 1, m.Draws())

		slots := m.Slots()
		require.Len(t, slots, 2)
		assert.Equal(t, "Ash Blossom & Joyous Spring", slots[0].Name)
		assert.True(t, slots[1].Blank)
	})

	t.Run("redraws on r", func(t *testing.T) {
		dealer, calls := testDealer()
		m := NewModelWithOptions(dealer, logger, true)

		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		m = updated.(*Model)

		assert.Equal(t, 2, *calls)
		assert.Equal(t, 2, m.Draws())
	})

	t.Run("quits on q", func(t *testing.T) {
		dealer, _ := testDealer()
		m := NewModelWithOptions(dealer, logger, true)

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = updated.(*Model)

		assert.NotNil(t, cmd)
		assert.Empty(t, m.View(), "quitting model renders nothing")
	})

	t.Run("renders hand after sizing", func(t *testing.T) {
		dealer, _ := testDealer()
		m := NewModelWithOptions(dealer, logger, true)

		assert.Equal(t, "Loading...", m.View(), "no render before dimensions arrive")

		updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
		m = updated.(*Model)

		view := m.View()
		assert.Contains(t, view, "Opening Hand")
		assert.Contains(t, view, "Ash Blossom")
	})

	t.Run("production mode hides slots", func(t *testing.T) {
		dealer, _ := testDealer()
		m := NewModel(dealer, logger)

		assert.False(t, m.IsTestMode())
		assert.Nil(t, m.Slots())
	})
}
