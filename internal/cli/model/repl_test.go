package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/cli/styles"
	"github.com/bnema/lrucache/pkg/lru"
)

func newTestRepl(t *testing.T, capacity int) (ReplModel, *lru.Cache[string, string]) {
	t.Helper()
	uc := usecase.NewReplayTraceUseCase()
	cache, err := lru.New(capacity, lru.WithEvictionListener[string, string](uc))
	require.NoError(t, err)
	return NewReplModel(context.Background(), styles.NewTheme(), cache, uc, capacity), cache
}

func enter(t *testing.T, m ReplModel, line string) ReplModel {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := next.(ReplModel)
	require.True(t, ok)
	return rm
}

func TestReplModel_AppliesCommands(t *testing.T) {
	m, cache := newTestRepl(t, 2)

	m = enter(t, m, "put 1 one")
	m = enter(t, m, "put 2 two")
	m = enter(t, m, "get 1")
	m = enter(t, m, "put 3 three")

	assert.Equal(t, []string{"3", "1"}, cache.Keys())
	assert.Len(t, m.history, 4)
	assert.Empty(t, m.input.Value())

	view := m.View()
	assert.Contains(t, view, "2/2")
	assert.Contains(t, view, "3=three")
	assert.Contains(t, view, "evicted 2")
}

func TestReplModel_ShowsParseErrors(t *testing.T) {
	m, cache := newTestRepl(t, 2)

	m = enter(t, m, "del 1")
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "unknown operation")
	assert.Equal(t, 0, cache.Len())

	m = enter(t, m, "get 1")
	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "miss")
}

func TestReplModel_HistoryIsBounded(t *testing.T) {
	m, _ := newTestRepl(t, 1)
	for i := 0; i < maxReplHistory+5; i++ {
		m = enter(t, m, "get k")
	}
	assert.Len(t, m.history, maxReplHistory)
}

func TestReplModel_Quit(t *testing.T) {
	m, _ := newTestRepl(t, 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())

	m, _ = newTestRepl(t, 1)
	m.input.SetValue("quit")
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
