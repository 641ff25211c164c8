package service_test

import (
	"context"
	"sort"
	"time"

	"dayheat/internal/core/domain"
	"dayheat/internal/core/ports"
)

// fakeDayRepository is an in-memory ports.DayRepository used to exercise the
// service rules without MySQL. IDs grow monotonically so creation order and
// id order agree, as they do in the real schema.
type fakeDayRepository struct {
	entries     map[uint64]domain.DayEntry
	tasks       map[uint64]domain.Task
	nextEntryID uint64
	nextTaskID  uint64
}

var _ ports.DayRepository = (*fakeDayRepository)(nil)

func newFakeDayRepository() *fakeDayRepository {
	return &fakeDayRepository{
		entries: make(map[uint64]domain.DayEntry),
		tasks:   make(map[uint64]domain.Task),
	}
}

func (f *fakeDayRepository) FindEntryByDate(_ context.Context, date time.Time) (domain.DayEntry, error) {
	for _, entry := range f.entries {
		if entry.Date.Equal(domain.TruncateToDay(date)) {
			entry.Tasks = f.entryTasks(entry.ID)
			return entry, nil
		}
	}
	return domain.DayEntry{}, domain.ErrEntryNotFound
}

func (f *fakeDayRepository) FindEntryByID(_ context.Context, id uint64) (domain.DayEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return domain.DayEntry{}, domain.ErrEntryNotFound
	}
	entry.Tasks = f.entryTasks(id)
	return entry, nil
}

func (f *fakeDayRepository) CreateEntry(_ context.Context, date time.Time) (domain.DayEntry, error) {
	f.nextEntryID++
	now := time.Now().UTC()
	entry := domain.DayEntry{
		ID:        f.nextEntryID,
		Date:      domain.TruncateToDay(date),
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.entries[entry.ID] = entry
	return entry, nil
}

func (f *fakeDayRepository) UpdateEntryCompleted(_ context.Context, id uint64, completed bool) error {
	entry, ok := f.entries[id]
	if !ok {
		return domain.ErrEntryNotFound
	}
	entry.Completed = completed
	entry.UpdatedAt = time.Now().UTC()
	f.entries[id] = entry
	return nil
}

func (f *fakeDayRepository) CreateTask(_ context.Context, entryID uint64, title string, description *string) (domain.Task, error) {
	f.nextTaskID++
	now := time.Now().UTC()
	task := domain.Task{
		ID:          f.nextTaskID,
		EntryID:     entryID,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.tasks[task.ID] = task
	return task, nil
}

func (f *fakeDayRepository) FindTaskByID(_ context.Context, id uint64) (domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (f *fakeDayRepository) UpdateTaskCompleted(_ context.Context, id uint64, completed bool) (domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	task.Completed = completed
	task.UpdatedAt = time.Now().UTC()
	f.tasks[id] = task
	return task, nil
}

func (f *fakeDayRepository) DeleteTask(_ context.Context, id uint64) error {
	if _, ok := f.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeDayRepository) ListEntriesInYear(_ context.Context, year int) ([]domain.DayEntry, error) {
	entries := make([]domain.DayEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		if entry.Date.Year() != year {
			continue
		}
		entry.Tasks = f.entryTasks(entry.ID)
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

func (f *fakeDayRepository) entryTasks(entryID uint64) []domain.Task {
	tasks := make([]domain.Task, 0)
	for _, task := range f.tasks {
		if task.EntryID == entryID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks
}
