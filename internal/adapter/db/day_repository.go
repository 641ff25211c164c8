package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"dayheat/internal/core/domain"
	"dayheat/internal/core/ports"
)

const (
	findEntryByDateQuery = `SELECT * FROM entries WHERE date = ?;`
	findEntryByIDQuery   = `SELECT * FROM entries WHERE id = ?;`

	insertEntryQuery          = `INSERT INTO entries (date, completed) VALUES (?, FALSE);`
	updateEntryCompletedQuery = `UPDATE entries SET completed = ? WHERE id = ?;`

	listEntryTasksQuery = `SELECT * FROM tasks WHERE entry_id = ? ORDER BY created_at, id;`

	insertTaskQuery          = `INSERT INTO tasks (entry_id, title, description) VALUES (?, ?, ?);`
	findTaskByIDQuery        = `SELECT * FROM tasks WHERE id = ?;`
	updateTaskCompletedQuery = `UPDATE tasks SET completed = ? WHERE id = ?;`
	deleteTaskQuery          = `DELETE FROM tasks WHERE id = ?;`

	listEntriesInRangeQuery = `SELECT * FROM entries WHERE date BETWEEN ? AND ? ORDER BY date;`

	listTasksInRangeQuery = `
SELECT t.*
FROM tasks t
JOIN entries e ON e.id = t.entry_id
WHERE e.date BETWEEN ? AND ?
ORDER BY t.entry_id, t.created_at, t.id;
`
)

type DayRepository struct {
	db *sqlx.DB
}

type entryRow struct {
	ID        uint64    `db:"id"`
	Date      time.Time `db:"date"`
	Completed bool      `db:"completed"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type taskRow struct {
	ID          uint64         `db:"id"`
	EntryID     uint64         `db:"entry_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.DayRepository = (*DayRepository)(nil)

func NewDayRepository(db *sqlx.DB) *DayRepository {
	return &DayRepository{db: db}
}

func (r *DayRepository) FindEntryByDate(ctx context.Context, date time.Time) (domain.DayEntry, error) {
	var row entryRow
	if err := r.db.GetContext(ctx, &row, findEntryByDateQuery, date.Format(domain.DateLayout)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DayEntry{}, domain.ErrEntryNotFound
		}
		return domain.DayEntry{}, err
	}

	return r.attachTasks(ctx, row)
}

func (r *DayRepository) FindEntryByID(ctx context.Context, id uint64) (domain.DayEntry, error) {
	var row entryRow
	if err := r.db.GetContext(ctx, &row, findEntryByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DayEntry{}, domain.ErrEntryNotFound
		}
		return domain.DayEntry{}, err
	}

	return r.attachTasks(ctx, row)
}

func (r *DayRepository) CreateEntry(ctx context.Context, date time.Time) (domain.DayEntry, error) {
	result, err := r.db.ExecContext(ctx, insertEntryQuery, date.Format(domain.DateLayout))
	if err != nil {
		return domain.DayEntry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.DayEntry{}, err
	}

	return r.FindEntryByID(ctx, uint64(id))
}

func (r *DayRepository) UpdateEntryCompleted(ctx context.Context, id uint64, completed bool) error {
	_, err := r.db.ExecContext(ctx, updateEntryCompletedQuery, completed, id)
	return err
}

func (r *DayRepository) CreateTask(ctx context.Context, entryID uint64, title string, description *string) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, insertTaskQuery, entryID, title, description)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindTaskByID(ctx, uint64(id))
}

func (r *DayRepository) FindTaskByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *DayRepository) UpdateTaskCompleted(ctx context.Context, id uint64, completed bool) (domain.Task, error) {
	// MySQL reports zero affected rows for a no-op update, so existence is
	// checked by the re-select rather than RowsAffected.
	if _, err := r.db.ExecContext(ctx, updateTaskCompletedQuery, completed, id); err != nil {
		return domain.Task{}, err
	}

	return r.FindTaskByID(ctx, id)
}

func (r *DayRepository) DeleteTask(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *DayRepository) ListEntriesInYear(ctx context.Context, year int) ([]domain.DayEntry, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).Format(domain.DateLayout)

	var entryRows []entryRow
	if err := r.db.SelectContext(ctx, &entryRows, listEntriesInRangeQuery, from, to); err != nil {
		return nil, err
	}

	var taskRows []taskRow
	if err := r.db.SelectContext(ctx, &taskRows, listTasksInRangeQuery, from, to); err != nil {
		return nil, err
	}

	tasksByEntry := make(map[uint64][]domain.Task, len(entryRows))
	for _, row := range taskRows {
		tasksByEntry[row.EntryID] = append(tasksByEntry[row.EntryID], mapTaskRowToDomainTask(row))
	}

	entries := make([]domain.DayEntry, 0, len(entryRows))
	for _, row := range entryRows {
		entry := mapEntryRowToDomainEntry(row)
		entry.Tasks = tasksByEntry[row.ID]
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *DayRepository) attachTasks(ctx context.Context, row entryRow) (domain.DayEntry, error) {
	var taskRows []taskRow
	if err := r.db.SelectContext(ctx, &taskRows, listEntryTasksQuery, row.ID); err != nil {
		return domain.DayEntry{}, err
	}

	entry := mapEntryRowToDomainEntry(row)
	entry.Tasks = make([]domain.Task, 0, len(taskRows))
	for _, taskRow := range taskRows {
		entry.Tasks = append(entry.Tasks, mapTaskRowToDomainTask(taskRow))
	}

	return entry, nil
}

func mapEntryRowToDomainEntry(row entryRow) domain.DayEntry {
	return domain.DayEntry{
		ID:        row.ID,
		Date:      domain.TruncateToDay(row.Date),
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		EntryID:   row.EntryID,
		Title:     row.Title,
		Completed: row.Completed,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task
}
