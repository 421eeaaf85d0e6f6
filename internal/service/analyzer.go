package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"grid-analyzer-go/internal/analysis"
	"grid-analyzer-go/internal/config"
	"grid-analyzer-go/pkg/models"
)

// Notifier отправляет уведомление о завершенном анализе
type Notifier interface {
	AnalysisComplete(runID string, stats models.OverallStats, regions []models.RegionInfo)
}

// AnalyzerService сервис для анализа плотности дефектов по панелям
type AnalyzerService struct {
	runService *RunService
	notifier   Notifier
	logger     *logrus.Logger
	defaults   models.AnalysisOptions
	quantile   float64
}

// NewAnalyzerService создает новый сервис анализатора
func NewAnalyzerService(cfg *config.Config, runService *RunService, notifier Notifier, logger *logrus.Logger) *AnalyzerService {
	return &AnalyzerService{
		runService: runService,
		notifier:   notifier,
		logger:     logger,
		defaults: models.AnalysisOptions{
			SubGridRows:    cfg.Analysis.SubGridRows,
			SubGridCols:    cfg.Analysis.SubGridCols,
			NoiseThreshold: cfg.Analysis.NoiseThreshold,
			Connectivity:   cfg.Analysis.Connectivity,
		},
		quantile: cfg.Analysis.NoiseQuantile,
	}
}

// Analyze выполняет полный конвейер анализа и сохраняет результат.
// Ошибки раскладки и конфигурации возвращаются как есть, чтобы
// обработчик отличал их от внутренних сбоев.
func (s *AnalyzerService) Analyze(request models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	s.logger.Infof("Начинаем анализ: %d панелей, %d дефектов", len(request.Panels), len(request.Defects))

	startTime := time.Now()

	panels := make([]analysis.Panel, len(request.Panels))
	for i, ps := range request.Panels {
		label := ps.Label
		if label == "" {
			label = analysis.PanelLabel(ps.Column, ps.Row)
		}
		panels[i] = analysis.Panel{
			Label:  label,
			Column: ps.Column,
			Row:    ps.Row,
			Box: analysis.Box{
				MinX: ps.XMin,
				MaxX: ps.XMax,
				MinY: ps.YMin,
				MaxY: ps.YMax,
			},
		}
	}

	defects := make([]analysis.Defect, len(request.Defects))
	for i, point := range request.Defects {
		defects[i] = analysis.NewDefect(point.X, point.Y)
	}

	options := s.resolveOptions(request.Options)
	result, err := analysis.Run(panels, defects, analysis.Options{
		SubGridRows:    options.SubGridRows,
		SubGridCols:    options.SubGridCols,
		NoiseThreshold: options.NoiseThreshold,
		Connectivity:   options.Connectivity,
		Estimator:      analysis.PercentileEstimator{Quantile: s.quantile},
	})
	if err != nil {
		s.logger.Errorf("Ошибка конвейера анализа: %v", err)
		return nil, err
	}

	s.logger.Infof("Фильтр выбросов: отброшено %d из %d дефектов", result.FilteredOut, result.InputDefects)
	s.logger.Infof("Сетка: %d ячеек, обнаружено %d регионов", len(result.Cells), len(result.Regions))

	runID := uuid.New().String()
	response := s.buildResponse(runID, result)

	if err := s.runService.SaveRun(runID, s.runName(request.Name, runID), options, response); err != nil {
		return nil, fmt.Errorf("failed to persist analysis: %w", err)
	}

	if s.notifier != nil {
		// Уведомление не задерживает ответ
		go s.notifier.AnalysisComplete(runID, response.OverallStats, response.Regions)
	}

	s.logger.Infof("Анализ завершен за %v, запуск %s", time.Since(startTime), runID)
	return response, nil
}

// resolveOptions накладывает перекрытия запроса на значения из конфигурации
func (s *AnalyzerService) resolveOptions(overrides models.AnalysisOptions) models.AnalysisOptions {
	options := s.defaults
	if overrides.SubGridRows > 0 {
		options.SubGridRows = overrides.SubGridRows
	}
	if overrides.SubGridCols > 0 {
		options.SubGridCols = overrides.SubGridCols
	}
	if overrides.NoiseThreshold > 0 {
		options.NoiseThreshold = overrides.NoiseThreshold
	}
	if overrides.Connectivity > 0 {
		options.Connectivity = overrides.Connectivity
	}
	return options
}

// runName возвращает имя запуска, подставляя короткий ID при пустом
func (s *AnalyzerService) runName(name, runID string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Run %s", runID[:8])
}

// buildResponse собирает ответ API из результата конвейера
func (s *AnalyzerService) buildResponse(runID string, result *analysis.Result) *models.AnalyzeResponse {
	regions := make([]models.RegionInfo, len(result.Regions))
	for i, region := range result.Regions {
		subgrids := make([]string, len(region.Cells))
		for j, cell := range region.Cells {
			subgrids[j] = cell.ID()
		}
		regions[i] = models.RegionInfo{
			RegionID:            region.ID,
			TotalDefectsCleaned: region.TotalCleaned,
			SubgridCount:        region.CellCount,
			AvgDefectsPerGrid:   region.AvgDensity,
			Subgrids:            subgrids,
		}
	}

	cells := make([]models.CellInfo, len(result.Cells))
	for i := range result.Cells {
		cell := &result.Cells[i]
		cells[i] = models.CellInfo{
			SubGridID:     cell.ID(),
			PanelLabel:    cell.PanelLabel,
			SubRow:        cell.SubRow,
			SubCol:        string(rune('a' + cell.SubCol)),
			GlobalRow:     cell.GlobalRow,
			GlobalCol:     cell.GlobalCol,
			RawCount:      cell.RawCount,
			NoiseEstimate: cell.NoiseEstimate,
			CleanedCount:  cell.CleanedCount,
			RegionID:      cell.RegionID,
		}
	}

	return &models.AnalyzeResponse{
		Status:  "success",
		Message: "Анализ плотности дефектов успешно завершен",
		RunID:   runID,
		OverallStats: models.OverallStats{
			PanelCount:      len(result.Panels),
			InputDefects:    result.InputDefects,
			OutliersRemoved: result.FilteredOut,
			ValidDefects:    len(result.Defects),
			TotalCells:      len(result.Cells),
			TotalRegions:    len(result.Regions),
		},
		Regions: regions,
		Cells:   cells,
	}
}
