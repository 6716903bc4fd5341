package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lrucache/internal/application/usecase"
)

// OutcomeBadge renders a badge for a step outcome.
func (t *Theme) OutcomeBadge(outcome usecase.Outcome) string {
	switch outcome {
	case usecase.OutcomeHit, usecase.OutcomeInserted, usecase.OutcomeUpdated:
		return t.Badge.Render(string(outcome))
	case usecase.OutcomeMiss:
		return t.StatusBadge(string(outcome), t.Background, t.Warning)
	default:
		return t.StatusBadge(string(outcome), t.Text, t.Error)
	}
}

// StatusBadge renders a badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// RenderOrder renders the cache entries from most to least recently used.
func (t *Theme) RenderOrder(keys []string, items map[string]string) string {
	if len(keys) == 0 {
		return t.Subtle.Render("(empty)")
	}

	cells := make([]string, 0, len(keys)+2)
	cells = append(cells, t.Subtle.Render("MRU "))
	for i, key := range keys {
		style := t.Entry
		if i == 0 {
			style = t.EntryHead
		}
		cells = append(cells, style.Render(key+"="+items[key]))
	}
	cells = append(cells, t.Subtle.Render(" LRU"))
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// RenderStep renders one applied operation.
func (t *Theme) RenderStep(step usecase.Step) string {
	var b strings.Builder
	if step.Op.Line > 0 {
		b.WriteString(t.Subtle.Render(fmt.Sprintf("%4d ", step.Op.Line)))
	}
	b.WriteString(t.Title.Render(step.Op.String()))
	b.WriteString(" ")
	b.WriteString(t.OutcomeBadge(step.Outcome))
	if step.Outcome == usecase.OutcomeHit {
		b.WriteString(" ")
		b.WriteString(t.Highlight.Render(step.Value))
	}
	for _, ev := range step.Evicted {
		b.WriteString(" ")
		b.WriteString(t.WarningStyle.Render("evicted " + ev.Key))
	}
	return b.String()
}

// RenderReplay renders a full replay summary.
func (t *Theme) RenderReplay(capacity int, out *usecase.ReplayTraceOutput, verbose bool) string {
	sections := make([]string, 0, len(out.Steps)+4)

	if verbose {
		for _, step := range out.Steps {
			sections = append(sections, t.RenderStep(step))
		}
		sections = append(sections, "")
	}

	stats := []string{
		t.MutedBadge(fmt.Sprintf("capacity %d", capacity)),
		t.MutedBadge(fmt.Sprintf("%d ops", len(out.Steps))),
		t.AccentBadge(fmt.Sprintf("%d hits", out.Hits)),
		t.MutedBadge(fmt.Sprintf("%d misses", out.Misses)),
		t.MutedBadge(fmt.Sprintf("%d evictions", out.Evictions)),
		t.MutedBadge(fmt.Sprintf("hit ratio %.1f%%", out.HitRatio()*100)),
	}
	sections = append(sections, strings.Join(stats, " "))
	sections = append(sections, t.RenderOrder(out.Order, out.Contents))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}
