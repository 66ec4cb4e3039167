// Package view derives the read-only tab projections of a task list.
package view

import (
	"strings"

	"tabdo/internal/task"
)

const (
	NameOpen = "Open"
	NameDone = "Done"
	NameAll  = "All"
)

type View struct {
	Name  string
	Title string
	Items []task.Task
	Count int
}

// Derive partitions tasks into the Open, Done and All views, in that order.
// Item order follows the input; the input slice is not modified.
func Derive(tasks []task.Task) []View {
	open := make([]task.Task, 0, len(tasks))
	done := make([]task.Task, 0, len(tasks))
	all := make([]task.Task, len(tasks))
	copy(all, tasks)

	for _, t := range tasks {
		if t.Done() {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}

	return []View{
		{Name: NameOpen, Title: "To Do", Items: open, Count: len(open)},
		{Name: NameDone, Title: "Done", Items: done, Count: len(done)},
		{Name: NameAll, Title: "All", Items: all, Count: len(all)},
	}
}

// Index returns the position of the named view in Derive's output, matching
// either the name or the title case-insensitively. Unknown names map to 0.
func Index(name string) int {
	name = strings.TrimSpace(name)
	for i, v := range Derive(nil) {
		if strings.EqualFold(v.Name, name) || strings.EqualFold(v.Title, name) {
			return i
		}
	}
	return 0
}
