// Package task owns the canonical task list: identity, ordering and
// write-through persistence.
package task

import "fmt"

type Status int

const (
	StatusOpen Status = iota
	StatusDone
)

// Wire values kept in the persisted collection.
const (
	wireOpen = "To Do"
	wireDone = "Done"
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusDone:
		return "Done"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

func (s Status) toggled() Status {
	if s == StatusDone {
		return StatusOpen
	}
	return StatusDone
}

func (s Status) wire() string {
	if s == StatusDone {
		return wireDone
	}
	return wireOpen
}

func parseStatus(v string) (Status, error) {
	switch v {
	case wireOpen:
		return StatusOpen, nil
	case wireDone:
		return StatusDone, nil
	default:
		return 0, fmt.Errorf("unknown status %q", v)
	}
}

type Task struct {
	ID     int
	Title  string
	Status Status
}

func (t Task) Done() bool {
	return t.Status == StatusDone
}
