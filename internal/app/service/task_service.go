package service

import (
	"context"
	"errors"
	"time"

	"dayheat/internal/core/domain"
	"dayheat/internal/core/ports"
)

type TaskService struct {
	dayRepository ports.DayRepository
}

func NewTaskService(dayRepository ports.DayRepository) *TaskService {
	return &TaskService{dayRepository: dayRepository}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, date time.Time) ([]domain.Task, bool, error) {
	entry, err := s.dayRepository.FindEntryByDate(ctx, domain.TruncateToDay(date))
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return []domain.Task{}, false, nil
		}
		return nil, false, err
	}

	return entry.Tasks, entry.Completed, nil
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	date := domain.TruncateToDay(input.Date)

	entry, err := s.dayRepository.FindEntryByDate(ctx, date)
	if err != nil {
		if !errors.Is(err, domain.ErrEntryNotFound) {
			return domain.Task{}, err
		}
		entry, err = s.dayRepository.CreateEntry(ctx, date)
		if err != nil {
			return domain.Task{}, err
		}
	}

	task, err := s.dayRepository.CreateTask(ctx, entry.ID, input.Title, input.Description)
	if err != nil {
		return domain.Task{}, err
	}

	// The new task starts incomplete, so the entry can only end up
	// not-completed, but the shared rule stays authoritative for every
	// mutation.
	if err := s.recomputeEntry(ctx, entry.ID); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) SetTaskCompleted(ctx context.Context, taskID uint64, completed bool) (domain.Task, error) {
	task, err := s.dayRepository.UpdateTaskCompleted(ctx, taskID, completed)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.recomputeEntry(ctx, task.EntryID); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64) error {
	task, err := s.dayRepository.FindTaskByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.dayRepository.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	return s.recomputeEntry(ctx, task.EntryID)
}

// recomputeEntry re-reads the entry's current task set after a mutation and
// persists the derived completed flag. The re-read already reflects the
// mutation that triggered it, so a toggled value counts with its new state
// and a deleted task is excluded.
func (s *TaskService) recomputeEntry(ctx context.Context, entryID uint64) error {
	entry, err := s.dayRepository.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	return s.dayRepository.UpdateEntryCompleted(ctx, entry.ID, domain.EntryCompleted(entry.Tasks))
}
