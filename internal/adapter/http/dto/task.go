package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	EntryID     uint64  `json:"entry_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type DayTasksResponse struct {
	Tasks     []TaskItem `json:"tasks"`
	Completed bool       `json:"completed"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
}

type UpdateTaskRequest struct {
	Completed *bool `json:"completed"`
}

type DeleteTaskResponse struct {
	Success bool `json:"success"`
}

type HeatmapItem struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Completed bool   `json:"completed"`
}

type YearStatsResponse struct {
	TotalDays      int `json:"total_days"`
	CompletedDays  int `json:"completed_days"`
	CompletionRate int `json:"completion_rate"`
	CurrentStreak  int `json:"current_streak"`
	LongestStreak  int `json:"longest_streak"`
}
