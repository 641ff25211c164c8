package domain

import "time"

// DateLayout is the wire format for calendar dates. All dates are UTC
// calendar days; the time-of-day component of Date is always midnight UTC.
const DateLayout = "2006-01-02"

type Task struct {
	ID          uint64
	EntryID     uint64
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DayEntry aggregates the tasks of one calendar date. Completed is derived
// from the task set and persisted after every task mutation.
type DayEntry struct {
	ID        uint64
	Date      time.Time
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []Task
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Date        time.Time
}

type HeatmapPoint struct {
	Date      time.Time
	Count     int
	Completed bool
}

type YearStats struct {
	TotalDays      int
	CompletedDays  int
	CompletionRate int
	CurrentStreak  int
	LongestStreak  int
}

// EntryCompleted is the shared completion rule: an entry is completed iff it
// has at least one task and every task is completed. An empty task set is
// never completed.
func EntryCompleted(tasks []Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, task := range tasks {
		if !task.Completed {
			return false
		}
	}
	return true
}

// TruncateToDay normalizes a timestamp to its UTC calendar date.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
