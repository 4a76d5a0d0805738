// Package ui runs the drag-and-drop planner in the terminal.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/weekplan/pkg/app"
	"tableflip.dev/weekplan/pkg/tui"
)

type UI struct {
	Service *app.Service
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return errors.New("can not start ui, no persistence")
	}
	return tui.Run(ctx, u.Service)
}
