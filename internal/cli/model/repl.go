package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lrucache/internal/application/port"
	"github.com/bnema/lrucache/internal/application/usecase"
	"github.com/bnema/lrucache/internal/cli/styles"
	"github.com/bnema/lrucache/internal/domain/trace"
)

const maxReplHistory = 10

// ReplModel is an interactive session issuing get/put commands to a cache.
type ReplModel struct {
	ctx      context.Context
	cache    port.Cache[string, string]
	replayUC *usecase.ReplayTraceUseCase
	theme    *styles.Theme
	capacity int

	input    textinput.Model
	history  []string
	err      error
	quitting bool
}

// NewReplModel creates a REPL over cache. replayUC must be the eviction
// listener registered on cache so evictions show up per command.
func NewReplModel(
	ctx context.Context,
	theme *styles.Theme,
	cache port.Cache[string, string],
	replayUC *usecase.ReplayTraceUseCase,
	capacity int,
) ReplModel {
	ti := textinput.New()
	ti.Placeholder = "put <key> <value> | get <key>"
	ti.Prompt = "lru> "
	ti.PromptStyle = theme.Highlight
	ti.CharLimit = 256
	ti.Focus()

	return ReplModel{
		ctx:      ctx,
		cache:    cache,
		replayUC: replayUC,
		theme:    theme,
		capacity: capacity,
		input:    ti,
	}
}

// Init implements tea.Model.
func (m ReplModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ReplModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.err = nil

	switch line {
	case "":
		return m, nil
	case "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	}

	op, err := trace.ParseLine(line)
	if err != nil {
		m.err = err
		return m, nil
	}

	step, err := m.replayUC.Apply(m.ctx, m.cache, op)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.history = append(m.history, m.theme.RenderStep(step))
	if len(m.history) > maxReplHistory {
		m.history = m.history[len(m.history)-maxReplHistory:]
	}
	return m, nil
}

// View implements tea.Model.
func (m ReplModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		t.Title.Render("lrucache "),
		t.MutedBadge(capacityLabel(m.cache.Len(), m.capacity)),
	)

	sections := []string{header, ""}
	sections = append(sections, m.history...)
	if len(m.history) > 0 {
		sections = append(sections, "")
	}
	sections = append(sections, t.RenderOrder(m.cache.Keys(), m.cache.Items()), "")
	if m.err != nil {
		sections = append(sections, t.ErrorStyle.Render("Error: "+m.err.Error()))
	}
	sections = append(sections,
		m.input.View(),
		t.HelpKey.Render("enter")+t.HelpDesc.Render(" run  ")+
			t.HelpKey.Render("esc")+t.HelpDesc.Render(" quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func capacityLabel(size, capacity int) string {
	return fmt.Sprintf("%d/%d", size, capacity)
}

// Ensure interface compliance.
var _ tea.Model = (*ReplModel)(nil)
