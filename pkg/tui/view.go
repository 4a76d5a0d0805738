package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/weekplan/pkg/dnd"
	"tableflip.dev/weekplan/pkg/item"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/week"
)

// View renders the pool, the week grid and the status line.
func (m Model) View() string {
	l := m.layout
	pool := m.renderPool(l)
	cols := make([]string, 0, week.Days+2)
	cols = append(cols, pool, " ")
	for d := range m.state.Days {
		cols = append(cols, m.renderDay(l, d))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	status := m.theme.Status.Render(truncate.StringWithTail(m.status, uint(l.width), "…"))
	return body + "\n" + status
}

func (m Model) renderPool(l layout) string {
	r := l.pool
	lit := m.drag.Highlights.Lit(dnd.NewPoolZone().ID())

	lines := make([]string, 0, r.h)
	lines = append(lines, m.header(fmt.Sprintf("Unscheduled (%d)", len(m.state.Unscheduled)), lit, false, r.w))
	lines = append(lines, m.input.View())
	lines = append(lines, m.theme.Rule.Render(strings.Repeat("─", r.w-1)))
	lines = append(lines, m.renderList(planner.Pool, l.listRows(planner.Pool), r.w-1)...)
	for len(lines) < l.edit.y {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderActions(l))
	return lipgloss.NewStyle().Width(r.w).Height(r.h).MaxHeight(r.h).Render(strings.Join(lines, "\n"))
}

func (m Model) renderActions(l layout) string {
	button := func(label, id string, w int) string {
		style := m.theme.Action
		if m.drag.Highlights.Lit(id) {
			style = m.theme.ActionLit
		}
		return style.Width(w).Align(lipgloss.Center).Render(label)
	}
	edit := button("Edit", dnd.NewEditZone().ID(), l.edit.w)
	del := button("Delete", dnd.NewDeleteZone().ID(), l.delete.w)
	return edit + strings.Repeat(" ", actionGap) + del
}

func (m Model) renderDay(l layout, d int) string {
	r := l.days[d]
	b := m.state.Days[d]
	lit := m.drag.Highlights.Lit(dnd.NewDayZone(d).ID())
	today := b.Date == week.New(m.now())[d].Date &&
		(int(m.now().Weekday())+6)%7 == d

	lines := make([]string, 0, r.h)
	lines = append(lines, m.header(fmt.Sprintf("%s (%d)", b.DayOfWeek, len(b.Items)), lit, today, r.w))
	lines = append(lines, m.header(b.Date, lit, today, r.w))
	lines = append(lines, m.theme.Rule.Render(strings.Repeat("─", r.w-1)))
	lines = append(lines, m.renderList(d, l.listRows(d), r.w-1)...)
	return lipgloss.NewStyle().Width(r.w).Height(r.h).MaxHeight(r.h).Render(strings.Join(lines, "\n"))
}

func (m Model) header(text string, lit, today bool, w int) string {
	style := m.theme.Header
	switch {
	case lit:
		style = m.theme.HeaderLit
	case today:
		style = m.theme.Today
	}
	return style.Width(w - 1).Render(truncate.StringWithTail(text, uint(w-1), "…"))
}

// renderList draws a list's cards. While the list is the drag source the
// dragged card is hidden, the others shift by their reorder offset and a
// placeholder marks the landing slot.
func (m Model) renderList(list, rows, w int) []string {
	items := m.state.List(list)
	slots := make([]string, len(items))

	source := m.drag.Active() && m.drag.Source() == list
	for i, it := range items {
		if !source {
			slots[i] = m.card(it, w)
			continue
		}
		if m.drag.Reorder.Hidden(i) {
			if slots[i] == "" {
				slots[i] = m.theme.Ghost.Render(cardText(it, w))
			}
			continue
		}
		slot := i + m.drag.Reorder.Offset(i)
		slots[slot] = m.card(it, w)
	}
	if source {
		if p, ok := m.drag.Reorder.Placeholder(); ok && len(slots) > 0 {
			if p >= len(slots) {
				p = len(slots) - 1
			}
			slots[p] = m.theme.Placeholder.Render(strings.Repeat("┄", w))
		}
	}

	if rows <= 0 {
		return nil
	}
	if len(slots) > rows {
		more := len(slots) - rows + 1
		slots = append(slots[:rows-1], m.theme.Status.Render(fmt.Sprintf("+%d more", more)))
	}
	return slots
}

func (m Model) card(it item.Item, w int) string {
	return m.theme.Card.Render(cardText(it, w))
}

func cardText(it item.Item, w int) string {
	if w < 2 {
		w = 2
	}
	return truncate.StringWithTail("• "+it.Text, uint(w), "…")
}
