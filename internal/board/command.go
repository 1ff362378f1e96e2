package board

import (
	"context"
	"fmt"
)

// Command names a machine operation that needs no user input.
type Command int

// Command values.
const (
	CommandMoveUp Command = iota
	CommandMoveDown
	CommandMoveLeft
	CommandMoveRight
	CommandProgress
	CommandRegress
	CommandIncrementPriority
	CommandDecrementPriority
	CommandOpenTodo
	CommandCloseTodo
	CommandCycleMode
	CommandOverlayUp
	CommandOverlayDown
	CommandDeleteTodoItem
	CommandDeleteProject
)

// commandNames stores log labels for each command.
var commandNames = map[Command]string{
	CommandMoveUp:            "move_up",
	CommandMoveDown:          "move_down",
	CommandMoveLeft:          "move_left",
	CommandMoveRight:         "move_right",
	CommandProgress:          "progress",
	CommandRegress:           "regress",
	CommandIncrementPriority: "increment_priority",
	CommandDecrementPriority: "decrement_priority",
	CommandOpenTodo:          "open_todo",
	CommandCloseTodo:         "close_todo",
	CommandCycleMode:         "cycle_mode",
	CommandOverlayUp:         "overlay_up",
	CommandOverlayDown:       "overlay_down",
	CommandDeleteTodoItem:    "delete_todo_item",
	CommandDeleteProject:     "delete_project",
}

// String returns the command label.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Dispatch runs one command against the machine.
func (m *Machine) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandMoveUp:
		return m.MoveUp(ctx)
	case CommandMoveDown:
		return m.MoveDown(ctx)
	case CommandMoveLeft:
		return m.MoveLeft(ctx)
	case CommandMoveRight:
		return m.MoveRight(ctx)
	case CommandProgress:
		return m.Progress(ctx)
	case CommandRegress:
		return m.Regress(ctx)
	case CommandIncrementPriority:
		return m.IncrementPriority(ctx)
	case CommandDecrementPriority:
		return m.DecrementPriority(ctx)
	case CommandOpenTodo:
		return m.OpenTodoOverlay(ctx)
	case CommandCloseTodo:
		m.CloseTodoOverlay()
	case CommandCycleMode:
		m.CycleMode()
	case CommandOverlayUp:
		m.OverlayUp()
	case CommandOverlayDown:
		m.OverlayDown()
	case CommandDeleteTodoItem:
		return m.DeleteTodoItem(ctx)
	case CommandDeleteProject:
		return m.DeleteProject(ctx)
	default:
		return fmt.Errorf("unknown %s", cmd)
	}
	return nil
}
