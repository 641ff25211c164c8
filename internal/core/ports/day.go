package ports

import (
	"context"
	"time"

	"dayheat/internal/core/domain"
)

type DayRepository interface {
	// FindEntryByDate loads the entry for a calendar date together with its
	// tasks ordered by creation. Returns domain.ErrEntryNotFound when the
	// date has no entry.
	FindEntryByDate(ctx context.Context, date time.Time) (domain.DayEntry, error)
	FindEntryByID(ctx context.Context, id uint64) (domain.DayEntry, error)
	CreateEntry(ctx context.Context, date time.Time) (domain.DayEntry, error)
	UpdateEntryCompleted(ctx context.Context, id uint64, completed bool) error

	CreateTask(ctx context.Context, entryID uint64, title string, description *string) (domain.Task, error)
	FindTaskByID(ctx context.Context, id uint64) (domain.Task, error)
	UpdateTaskCompleted(ctx context.Context, id uint64, completed bool) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) error

	// ListEntriesInYear returns every entry dated within the calendar year,
	// tasks included, ordered by date ascending.
	ListEntriesInYear(ctx context.Context, year int) ([]domain.DayEntry, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, date time.Time) ([]domain.Task, bool, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	SetTaskCompleted(ctx context.Context, taskID uint64, completed bool) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64) error
}

type HeatmapService interface {
	Heatmap(ctx context.Context, year int) ([]domain.HeatmapPoint, error)
	Stats(ctx context.Context, year int) (domain.YearStats, error)
}
