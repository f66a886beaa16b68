package browse

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned by Dispatch for names outside the table.
var ErrUnknownCommand = errors.New("unknown command")

// CommandName identifies a user operation.
type CommandName string

const (
	CommandSubmitFilter CommandName = "submit-filter"
	CommandMore         CommandName = "more"
	CommandSelect       CommandName = "select"
	CommandSetTheme     CommandName = "set-theme"
)

// Command is one user operation plus its argument. Only the field matching
// Name is read.
type Command struct {
	Name     CommandName
	Criteria Criteria
	ID       string
	Theme    string
}

// Result reports what a dispatched command did.
type Result struct {
	// Changed is false for no-op outcomes such as advancing past the last
	// page or selecting an unknown id.
	Changed bool
}

type handler func(*Controller, Command) (Result, error)

var dispatchTable = map[CommandName]handler{
	CommandSubmitFilter: func(c *Controller, cmd Command) (Result, error) {
		if err := c.SubmitFilter(cmd.Criteria); err != nil {
			return Result{}, err
		}
		return Result{Changed: true}, nil
	},
	CommandMore: func(c *Controller, _ Command) (Result, error) {
		return Result{Changed: c.RequestMorePages()}, nil
	},
	CommandSelect: func(c *Controller, cmd Command) (Result, error) {
		return Result{Changed: c.SelectItem(cmd.ID)}, nil
	},
	CommandSetTheme: func(c *Controller, cmd Command) (Result, error) {
		if err := c.SetTheme(cmd.Theme); err != nil {
			return Result{}, err
		}
		return Result{Changed: true}, nil
	},
}

// Dispatch routes cmd through the command table.
func (c *Controller) Dispatch(cmd Command) (Result, error) {
	h, ok := dispatchTable[cmd.Name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
	return h(c, cmd)
}

// Commands lists the names Dispatch accepts.
func Commands() []CommandName {
	return []CommandName{CommandSubmitFilter, CommandMore, CommandSelect, CommandSetTheme}
}
