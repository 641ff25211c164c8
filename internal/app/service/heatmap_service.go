package service

import (
	"context"
	"math"

	"dayheat/internal/core/domain"
	"dayheat/internal/core/ports"
)

type HeatmapService struct {
	dayRepository ports.DayRepository
}

func NewHeatmapService(dayRepository ports.DayRepository) *HeatmapService {
	return &HeatmapService{dayRepository: dayRepository}
}

var _ ports.HeatmapService = (*HeatmapService)(nil)

func (s *HeatmapService) Heatmap(ctx context.Context, year int) ([]domain.HeatmapPoint, error) {
	entries, err := s.dayRepository.ListEntriesInYear(ctx, year)
	if err != nil {
		return nil, err
	}

	points := make([]domain.HeatmapPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, domain.HeatmapPoint{
			Date:      entry.Date,
			Count:     len(entry.Tasks),
			Completed: entry.Completed,
		})
	}

	return points, nil
}

func (s *HeatmapService) Stats(ctx context.Context, year int) (domain.YearStats, error) {
	points, err := s.Heatmap(ctx, year)
	if err != nil {
		return domain.YearStats{}, err
	}

	var stats domain.YearStats
	for _, point := range points {
		if point.Count > 0 {
			stats.TotalDays++
		}
		if point.Completed {
			stats.CompletedDays++
		}
	}
	if stats.TotalDays > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.CompletedDays) / float64(stats.TotalDays) * 100))
	}

	// Streaks run over recorded days, newest first for the current streak:
	// days with no entry at all are not part of the sequence.
	for i := len(points) - 1; i >= 0; i-- {
		if !points[i].Completed {
			break
		}
		stats.CurrentStreak++
	}

	run := 0
	for _, point := range points {
		if point.Completed {
			run++
			if run > stats.LongestStreak {
				stats.LongestStreak = run
			}
		} else {
			run = 0
		}
	}

	return stats, nil
}
