package mapper

import (
	"time"

	"dayheat/internal/adapter/http/dto"
	"dayheat/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		EntryID:   task.EntryID,
		Title:     task.Title,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	return item
}

func ToHeatmapItems(points []domain.HeatmapPoint) []dto.HeatmapItem {
	items := make([]dto.HeatmapItem, 0, len(points))
	for _, point := range points {
		items = append(items, dto.HeatmapItem{
			Date:      point.Date.Format(domain.DateLayout),
			Count:     point.Count,
			Completed: point.Completed,
		})
	}
	return items
}

func ToYearStatsResponse(stats domain.YearStats) dto.YearStatsResponse {
	return dto.YearStatsResponse{
		TotalDays:      stats.TotalDays,
		CompletedDays:  stats.CompletedDays,
		CompletionRate: stats.CompletionRate,
		CurrentStreak:  stats.CurrentStreak,
		LongestStreak:  stats.LongestStreak,
	}
}
