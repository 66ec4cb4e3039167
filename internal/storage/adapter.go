package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-kratos/kratos/v2/log"
)

// Slot keys. Renaming them orphans existing data.
const (
	TasksKey   = "toDoListItems"
	CounterKey = "taskIdCounter"
)

// Record is one persisted task. The adapter only checks its shape.
type Record struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Adapter moves the task collection and the id counter in and out of a KV.
// Reads never fail: anything missing or unreadable comes back as the zero
// value. Writes overwrite the whole slot.
type Adapter struct {
	kv  KV
	log *log.Helper
}

func NewAdapter(kv KV, logger log.Logger) *Adapter {
	return &Adapter{
		kv:  kv,
		log: log.NewHelper(log.With(logger, "module", "storage")),
	}
}

func (a *Adapter) LoadTasks() []Record {
	raw, ok, err := a.kv.Get(TasksKey)
	if err != nil {
		a.log.Warnf("read %s: %v", TasksKey, err)
		return []Record{}
	}
	if !ok {
		return []Record{}
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		a.log.Warnf("decode %s: %v", TasksKey, err)
		return []Record{}
	}
	if err := validateRecords(records); err != nil {
		a.log.Warnf("discard %s: %v", TasksKey, err)
		return []Record{}
	}
	if records == nil {
		records = []Record{}
	}
	return records
}

func (a *Adapter) LoadCounter() int {
	raw, ok, err := a.kv.Get(CounterKey)
	if err != nil {
		a.log.Warnf("read %s: %v", CounterKey, err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		a.log.Warnf("discard %s: invalid value %q", CounterKey, raw)
		return 0
	}
	return n
}

func (a *Adapter) SaveTasks(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", TasksKey, err)
	}
	if err := a.kv.Put(TasksKey, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", TasksKey, err)
	}
	return nil
}

func (a *Adapter) SaveCounter(n int) error {
	if err := a.kv.Put(CounterKey, strconv.Itoa(n)); err != nil {
		return fmt.Errorf("write %s: %w", CounterKey, err)
	}
	return nil
}

func validateRecords(records []Record) error {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		if r.ID <= 0 {
			return fmt.Errorf("non-positive id %d", r.ID)
		}
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("duplicate id %d", r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.Title == "" {
			return fmt.Errorf("empty title for id %d", r.ID)
		}
	}
	return nil
}
