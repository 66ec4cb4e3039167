// Package mode gates destructive operations and decides what a tap on a
// task means.
//
//	Normal --EnableRemoval--> RemovalMode
//	RemovalMode --DisableRemoval--> Normal
//	RemovalMode --RequestClear--> ConfirmingClear
//	ConfirmingClear --CancelClear--> RemovalMode
//	ConfirmingClear --ConfirmClear--> Normal (clears the store)
package mode

import (
	"errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"

	"tabdo/internal/task"
)

var ErrInvalidTransition = errors.New("invalid mode transition")

type State int

const (
	Normal State = iota
	RemovalMode
	ConfirmingClear
)

func (s State) String() string {
	switch s {
	case Normal:
		return "Normal"
	case RemovalMode:
		return "RemovalMode"
	case ConfirmingClear:
		return "ConfirmingClear"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Action reports what a Tap did.
type Action int

const (
	Toggled Action = iota + 1
	Removed
)

// Store is the part of *task.Store the controller drives.
type Store interface {
	Toggle(id int) (task.Task, error)
	Remove(id int) error
	Clear()
}

type Controller struct {
	store Store
	state State
	log   *log.Helper
}

func NewController(store Store, logger log.Logger) *Controller {
	return &Controller{
		store: store,
		state: Normal,
		log:   log.NewHelper(log.With(logger, "module", "mode")),
	}
}

func (c *Controller) State() State {
	return c.state
}

// CanCreate reports whether new tasks may be entered. Entry is closed while
// removing or confirming a clear.
func (c *Controller) CanCreate() bool {
	return c.state == Normal
}

// EnableRemoval is a no-op when removal mode is already on.
func (c *Controller) EnableRemoval() error {
	switch c.state {
	case Normal:
		return c.transition(RemovalMode)
	case RemovalMode:
		return nil
	default:
		return c.reject("enable removal")
	}
}

// DisableRemoval is a no-op in Normal.
func (c *Controller) DisableRemoval() error {
	switch c.state {
	case RemovalMode:
		return c.transition(Normal)
	case Normal:
		return nil
	default:
		return c.reject("disable removal")
	}
}

func (c *Controller) RequestClear() error {
	if c.state != RemovalMode {
		return c.reject("request clear")
	}
	return c.transition(ConfirmingClear)
}

func (c *Controller) CancelClear() error {
	if c.state != ConfirmingClear {
		return c.reject("cancel clear")
	}
	return c.transition(RemovalMode)
}

// ConfirmClear is the only path to Store.Clear.
func (c *Controller) ConfirmClear() error {
	if c.state != ConfirmingClear {
		return c.reject("confirm clear")
	}
	c.store.Clear()
	c.log.Infof("cleared all tasks")
	return c.transition(Normal)
}

// Tap toggles the task in Normal and removes it in RemovalMode. Taps are
// rejected while the clear dialog is open.
func (c *Controller) Tap(id int) (Action, error) {
	switch c.state {
	case Normal:
		if _, err := c.store.Toggle(id); err != nil {
			return 0, err
		}
		return Toggled, nil
	case RemovalMode:
		if err := c.store.Remove(id); err != nil {
			return 0, err
		}
		return Removed, nil
	default:
		return 0, c.reject("tap")
	}
}

func (c *Controller) transition(to State) error {
	c.log.Debugf("%s -> %s", c.state, to)
	c.state = to
	return nil
}

func (c *Controller) reject(op string) error {
	return fmt.Errorf("%s in %s: %w", op, c.state, ErrInvalidTransition)
}
