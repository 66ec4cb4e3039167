package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabdo/internal/task"
)

func TestDerive_Scenario(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "Buy milk", Status: task.StatusDone},
		{ID: 2, Title: "Walk dog", Status: task.StatusOpen},
	}

	views := Derive(tasks)
	require.Len(t, views, 3)

	assert.Equal(t, NameOpen, views[0].Name)
	assert.Equal(t, []task.Task{{ID: 2, Title: "Walk dog", Status: task.StatusOpen}}, views[0].Items)
	assert.Equal(t, NameDone, views[1].Name)
	assert.Equal(t, []task.Task{{ID: 1, Title: "Buy milk", Status: task.StatusDone}}, views[1].Items)
	assert.Equal(t, NameAll, views[2].Name)
	assert.Equal(t, 2, views[2].Count)
}

func TestDerive_CountsAddUp(t *testing.T) {
	var tasks []task.Task
	for id := 1; id <= 9; id++ {
		status := task.StatusOpen
		if id%3 == 0 {
			status = task.StatusDone
		}
		tasks = append(tasks, task.Task{ID: id, Title: "t", Status: status})

		views := Derive(tasks)
		assert.Equal(t, views[2].Count, views[0].Count+views[1].Count)
		for _, v := range views {
			assert.Equal(t, len(v.Items), v.Count, v.Name)
		}
	}
}

func TestDerive_KeepsOrderAndInput(t *testing.T) {
	tasks := []task.Task{
		{ID: 1, Title: "a", Status: task.StatusOpen},
		{ID: 4, Title: "b", Status: task.StatusDone},
		{ID: 7, Title: "c", Status: task.StatusOpen},
	}
	before := append([]task.Task(nil), tasks...)

	views := Derive(tasks)
	views[2].Items[0].Title = "changed"

	assert.Equal(t, before, tasks)
	assert.Equal(t, 1, views[0].Items[0].ID)
	assert.Equal(t, 7, views[0].Items[1].ID)
}

func TestDerive_Empty(t *testing.T) {
	for _, v := range Derive(nil) {
		assert.NotNil(t, v.Items)
		assert.Zero(t, v.Count)
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index("open"))
	assert.Equal(t, 0, Index("To Do"))
	assert.Equal(t, 1, Index("DONE"))
	assert.Equal(t, 2, Index(" all "))
	assert.Equal(t, 0, Index("bogus"))
}
