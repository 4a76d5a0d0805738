// Package tui is the terminal planner: a pool of items beside a seven day
// grid, rearranged by dragging with the mouse.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/dnd"
	"tableflip.dev/weekplan/pkg/log"
	"tableflip.dev/weekplan/pkg/planner"
	"tableflip.dev/weekplan/pkg/store"
)

const defaultStatus = "type and press enter to add · drag cards with the mouse · esc cancels a drag · ctrl+c quits"

// messages
type storeEventMsg struct{ ev store.Event }
type storeClosedMsg struct{}

// Model contains UI state. The planner state itself lives in the
// controller; state is the latest snapshot for drawing.
type Model struct {
	svc    *app.Service
	ctl    *planner.Controller
	state  planner.State
	events <-chan store.Event

	drag    *dnd.Drag
	pointer struct{ x, y int }
	// reload is set when the store changed mid-drag.
	reload bool

	input  textinput.Model
	status string
	theme  Theme
	now    func() time.Time

	termWidth  int
	termHeight int
	layout     layout
}

// New creates a UI model around an open controller. events may be nil.
func New(svc *app.Service, ctl *planner.Controller, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.Placeholder = "New item…"
	ti.CharLimit = 256
	ti.Prompt = "› "
	ti.Focus()

	return Model{
		svc:    svc,
		ctl:    ctl,
		state:  ctl.State(),
		events: events,
		drag:   dnd.NewDrag(cardGeometry),
		input:  ti,
		status: defaultStatus,
		theme:  Default(),
		now:    time.Now,
		layout: newLayout(0, 0),
	}
}

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForStore())
}

func (m Model) waitForStore() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return storeClosedMsg{}
		}
		return storeEventMsg{ev}
	}
}

// Update handles messages. All planner mutations go through the controller
// so each one starts from the latest state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.layout = newLayout(msg.Width, msg.Height)
		m.input.SetWidth(poolWidth - 4)

	case storeEventMsg:
		if m.drag.Active() {
			m.reload = true
		} else {
			m.reloadState()
		}
		cmds = append(cmds, m.waitForStore())

	case storeClosedMsg:
		m.events = nil

	case tea.BlurMsg:
		if m.drag.Active() {
			m.endDrag("drag cancelled")
		}

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button == tea.MouseLeft {
			m.startDrag(mouse.X, mouse.Y)
		}

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.hover(mouse.X, mouse.Y)

	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		m.drop(mouse.X, mouse.Y)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.drag.Active() {
				m.endDrag("drag cancelled")
			} else {
				m.input.Reset()
			}
		case "enter":
			m.submit()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit adds the typed item. Blank input is ignored and kept in the field.
func (m *Model) submit() {
	text := m.input.Value()
	st, ok := m.ctl.Add(text)
	if !ok {
		return
	}
	m.state = st
	m.input.Reset()
	m.status = "Added"
}

func (m *Model) startDrag(x, y int) {
	list, idx, ok := m.layout.cardAt(m.state, x, y)
	if !ok {
		return
	}
	items := m.state.List(list)
	it := items[idx]
	m.drag.Start(it, list, idx, len(items))
	m.pointer.x, m.pointer.y = x, y
	m.status = fmt.Sprintf("dragging %q", it.Text)
}

func (m *Model) hover(x, y int) {
	if !m.drag.Active() {
		return
	}
	m.pointer.x, m.pointer.y = x, y
	stack, _, localY := m.layout.hit(x, y)
	m.drag.Hover(stack, localY)
}

func (m *Model) drop(x, y int) {
	if !m.drag.Active() {
		return
	}
	stack, _, localY := m.layout.hit(x, y)
	m.drag.Hover(stack, localY)

	st, changed := m.ctl.Apply(func(s planner.State) planner.State {
		return m.drag.Drop(s, stack)
	})
	m.state = st

	status := defaultStatus
	switch {
	case len(stack) == 0:
		status = "drag cancelled"
	case changed:
		status = "Moved"
	}
	m.endDrag(status)
}

// endDrag is the global drag-end signal: it clears transient drag state
// whether or not a zone was entered.
func (m *Model) endDrag(status string) {
	m.drag.End()
	m.status = status
	if m.reload {
		m.reload = false
		m.reloadState()
	}
}

func (m *Model) reloadState() {
	if m.svc == nil || m.svc.Persistence == nil {
		return
	}
	m.state = m.svc.Reload(m.ctl)
	log.Debug().Msg("tui: reloaded after store change")
}

// Run opens the planner and runs the UI until the user quits.
func Run(ctx context.Context, svc *app.Service) error {
	ctl, err := svc.Open()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events, err := svc.Persistence.Watch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("tui: store watch unavailable")
		events = nil
	}

	p := tea.NewProgram(New(svc, ctl, events),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
