package tui

import (
	"tableflip.dev/weekplan/pkg/dnd"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/week"
)

// Cards are one row tall with no gap, so a list's geometry is in cells.
var cardGeometry = dnd.Geometry{ItemHeight: 1, Gap: 0}

const (
	poolWidth  = 30
	listTop    = 3 // header, input or date, rule
	minWidth   = poolWidth + 1 + week.Days*6
	minHeight  = listTop + 5
	actionGap  = 2
	footerRows = 1
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout maps terminal cells to drop zones. View draws with the same numbers.
type layout struct {
	width, height int

	pool   rect
	edit   rect
	delete rect
	days   [week.Days]rect
}

func newLayout(width, height int) layout {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	body := height - footerRows
	l := layout{width: width, height: height}
	l.pool = rect{x: 0, y: 0, w: poolWidth, h: body}

	half := (poolWidth - actionGap) / 2
	actionsY := body - 1
	l.edit = rect{x: 0, y: actionsY, w: half, h: 1}
	l.delete = rect{x: half + actionGap, y: actionsY, w: half, h: 1}

	x0 := poolWidth + 1
	colW := (width - x0) / week.Days
	for d := range l.days {
		l.days[d] = rect{x: x0 + d*colW, y: 0, w: colW, h: body}
	}
	return l
}

// listRows is how many cards a list can show.
func (l layout) listRows(list int) int {
	if list == planner.Pool {
		return l.edit.y - 1 - listTop
	}
	return l.days[0].h - listTop
}

// hit returns the zones under (x, y), innermost first, the list zone found
// (planner.Pool, a day, or noList) and the pointer offset from that list's
// first card row.
func (l layout) hit(x, y int) ([]dnd.Zone, int, float64) {
	localY := float64(y - listTop)
	switch {
	case l.edit.contains(x, y):
		return []dnd.Zone{dnd.NewEditZone(), dnd.NewPoolZone()}, planner.Pool, localY
	case l.delete.contains(x, y):
		return []dnd.Zone{dnd.NewDeleteZone(), dnd.NewPoolZone()}, planner.Pool, localY
	case l.pool.contains(x, y):
		return []dnd.Zone{dnd.NewPoolZone()}, planner.Pool, localY
	}
	for d, r := range l.days {
		if r.contains(x, y) {
			return []dnd.Zone{dnd.NewDayZone(d)}, d, localY
		}
	}
	return nil, noList, 0
}

const noList = -2

// cardAt returns the list and index of the card drawn at (x, y).
func (l layout) cardAt(s planner.State, x, y int) (int, int, bool) {
	_, list, localY := l.hit(x, y)
	if list == noList || localY < 0 {
		return 0, 0, false
	}
	if list == planner.Pool && (l.edit.contains(x, y) || l.delete.contains(x, y)) {
		return 0, 0, false
	}
	idx := int(localY)
	if idx >= l.listRows(list) || idx >= len(s.List(list)) {
		return 0, 0, false
	}
	return list, idx, true
}
