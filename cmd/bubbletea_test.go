package cmd

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"gotest.tools/assert"

	"github.com/julien-sobczak/the-moodwriter/internal/mood"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
)

func press(t *testing.T, m checkinModel, key tea.KeyType) checkinModel {
	t.Helper()
	res, _ := m.Update(tea.KeyMsg{Type: key})
	next, ok := res.(checkinModel)
	require.True(t, ok)
	return next
}

func typeText(t *testing.T, m checkinModel, input string) checkinModel {
	t.Helper()
	res, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(input)})
	next, ok := res.(checkinModel)
	require.True(t, ok)
	return next
}

func TestCheckinFlow(t *testing.T) {
	clock.FreezeAt(time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))
	defer clock.Unfreeze()

	m := newCheckinModel(mood.NewSession(clock.Now()))

	// Type a mood description and check in
	m = typeText(t, m, "今天跟朋友吃飯很開心")
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, "joy", m.session.Current)
	require.Len(t, m.session.Journey, 8)

	// The check-in moves the focus to the task list
	assert.Equal(t, focusTasks, m.focus)

	// Complete the first suggested task
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, 10, m.session.Points)
	assert.Equal(t, 1, m.session.RainbowCount())

	// Completing the same task again must not double-count
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, 10, m.session.Points)

	// Move down and complete another one
	m = press(t, m, tea.KeyDown)
	m = press(t, m, tea.KeyEnter)
	assert.Equal(t, 20, m.session.Points)
	assert.Equal(t, 2, m.session.RainbowCount())
}

func TestCheckinBlankInputIsIgnored(t *testing.T) {
	clock.FreezeAt(time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))
	defer clock.Unfreeze()

	m := newCheckinModel(mood.NewSession(clock.Now()))
	m = typeText(t, m, "   ")
	m = press(t, m, tea.KeyEnter)

	assert.Equal(t, "", m.session.Current)
	assert.Equal(t, focusInput, m.focus)
}

func TestCheckinView(t *testing.T) {
	clock.FreezeAt(time.Date(2024, 3, 7, 10, 0, 0, 0, time.UTC))
	defer clock.Unfreeze()

	m := newCheckinModel(mood.NewSession(clock.Now()))
	assert.Assert(t, strings.Contains(m.View(), "How do you feel?"))

	m = typeText(t, m, "有點焦慮，擔心報告")
	m = press(t, m, tea.KeyEnter)

	view := m.View()
	assert.Assert(t, strings.Contains(view, "焦慮"))
	assert.Assert(t, strings.Contains(view, "[ ]"))
	assert.Assert(t, strings.Contains(view, "points"))
}

func TestCheckinQuitBeforeFirstCheckin(t *testing.T) {
	m := newCheckinModel(mood.NewBlankSession())
	m = press(t, m, tea.KeyEsc)
	assert.Assert(t, m.quitting)
	assert.Equal(t, "", m.View())
}
