package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"tabdo/internal/storage"
)

// ErrNotFound is returned when a mutation names an id the store does not hold.
var ErrNotFound = errors.New("task not found")

// Persister is the storage side of the store. *storage.Adapter satisfies it.
type Persister interface {
	LoadTasks() []storage.Record
	LoadCounter() int
	SaveTasks(records []storage.Record) error
	SaveCounter(n int) error
}

// Store is the in-memory source of truth. Every successful mutation is
// written through to the Persister before the call returns. A Store is not
// safe for concurrent use; callers drive it from one event loop.
type Store struct {
	persist Persister
	log     *log.Helper
	tasks   []Task
	nextID  int
}

// NewStore hydrates a store from p.
func NewStore(p Persister, logger log.Logger) *Store {
	s := &Store{
		persist: p,
		log:     log.NewHelper(log.With(logger, "module", "task")),
	}
	s.tasks = s.hydrate(p.LoadTasks())
	s.nextID = p.LoadCounter()
	for _, t := range s.tasks {
		if t.ID > s.nextID {
			s.log.Warnf("counter %d behind stored id %d, advancing", s.nextID, t.ID)
			s.nextID = t.ID
		}
	}
	return s
}

func (s *Store) hydrate(records []storage.Record) []Task {
	tasks := make([]Task, 0, len(records))
	for _, r := range records {
		status, err := parseStatus(r.Status)
		if err != nil {
			s.log.Warnf("discard stored tasks: id %d: %v", r.ID, err)
			return []Task{}
		}
		tasks = append(tasks, Task{ID: r.ID, Title: r.Title, Status: status})
	}
	sortByID(tasks)
	return tasks
}

// Create adds an open task. A title that is empty after trimming is ignored
// and reported with ok == false.
func (s *Store) Create(title string) (t Task, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, false
	}
	t = Task{ID: s.nextID + 1, Title: title, Status: StatusOpen}

	next := make([]Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, t)
	sortByID(next)

	s.tasks = next
	s.nextID = t.ID
	s.saveTasks()
	s.saveCounter()
	return t, true
}

// Toggle flips the task between open and done.
func (s *Store) Toggle(id int) (Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return Task{}, fmt.Errorf("toggle %d: %w", id, ErrNotFound)
	}
	next := s.List()
	next[i].Status = next[i].Status.toggled()
	sortByID(next)

	s.tasks = next
	s.saveTasks()
	return next[s.indexOf(id)], nil
}

func (s *Store) Remove(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	next := make([]Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)

	s.tasks = next
	s.saveTasks()
	return nil
}

// Clear drops every task. The id counter is kept so ids are never reused.
func (s *Store) Clear() {
	s.tasks = []Task{}
	s.saveTasks()
}

// List returns a copy of the tasks in ascending id order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// NextID is the highest id issued so far; the next task gets NextID()+1.
func (s *Store) NextID() int {
	return s.nextID
}

func (s *Store) indexOf(id int) int {
	i := sort.Search(len(s.tasks), func(i int) bool { return s.tasks[i].ID >= id })
	if i < len(s.tasks) && s.tasks[i].ID == id {
		return i
	}
	return -1
}

func (s *Store) saveTasks() {
	records := make([]storage.Record, len(s.tasks))
	for i, t := range s.tasks {
		records[i] = storage.Record{ID: t.ID, Title: t.Title, Status: t.Status.wire()}
	}
	if err := s.persist.SaveTasks(records); err != nil {
		s.log.Errorf("save tasks: %v", err)
	}
}

func (s *Store) saveCounter() {
	if err := s.persist.SaveCounter(s.nextID); err != nil {
		s.log.Errorf("save counter: %v", err)
	}
}

func sortByID(tasks []Task) {
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
}
