// Package handler chains key handlers and dispatches resolved actions.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/keymap"
)

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the key.
var NotHandled = Result{}

// Handled creates a Result indicating the key was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handler attempts to handle a key press.
type Handler func(msg tea.KeyMsg) Result

// Chain runs handlers in order until one handles the key.
func Chain(msg tea.KeyMsg, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(msg); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}

// Actions maps resolved actions to their handlers.
type Actions map[keymap.Action]func() tea.Cmd

// Dispatch returns a Handler that resolves the key and runs the matching
// action. Unbound keys and actions without a handler are not handled.
func Dispatch(r *keymap.Resolver, actions Actions) Handler {
	return func(msg tea.KeyMsg) Result {
		fn, ok := actions[r.Resolve(msg.String())]
		if !ok {
			return NotHandled
		}
		return Handled(fn())
	}
}
