package service

import (
	"time"

	"grid-analyzer-go/pkg/models"
)

// RunResponse ответ с сохраненным запуском анализа
type RunResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Options      models.AnalysisOptions `json:"options"`
	OverallStats models.OverallStats    `json:"overall_stats"`
	Regions      []models.RegionInfo    `json:"regions"`
	Cells        []models.CellInfo      `json:"cells,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// ListRunsResponse ответ со списком запусков анализа
type ListRunsResponse struct {
	Runs  []RunResponse `json:"runs"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}
