package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"grid-analyzer-go/internal/model"
	"grid-analyzer-go/internal/repository"
	"grid-analyzer-go/pkg/models"
)

// RunService сервис для работы с сохраненными запусками анализа
type RunService struct {
	runRepo repository.RunRepository
	logger  *logrus.Logger
}

// NewRunService создает новый сервис для работы с запусками
func NewRunService(runRepo repository.RunRepository, logger *logrus.Logger) *RunService {
	return &RunService{
		runRepo: runRepo,
		logger:  logger,
	}
}

// SaveRun сохраняет результат анализа в базе данных
func (s *RunService) SaveRun(runID, name string, options models.AnalysisOptions, response *models.AnalyzeResponse) error {
	s.logger.Infof("Сохраняем запуск анализа %s в базе данных", runID)

	run := &model.AnalysisRun{
		ID:              runID,
		Name:            name,
		SubGridRows:     options.SubGridRows,
		SubGridCols:     options.SubGridCols,
		NoiseThreshold:  options.NoiseThreshold,
		Connectivity:    options.Connectivity,
		PanelCount:      response.OverallStats.PanelCount,
		InputDefects:    response.OverallStats.InputDefects,
		OutliersRemoved: response.OverallStats.OutliersRemoved,
		TotalCells:      response.OverallStats.TotalCells,
		TotalRegions:    response.OverallStats.TotalRegions,
	}

	for _, region := range response.Regions {
		run.Regions = append(run.Regions, model.RunRegion{
			RunID:               runID,
			RegionID:            region.RegionID,
			TotalDefectsCleaned: region.TotalDefectsCleaned,
			SubgridCount:        region.SubgridCount,
			AvgDefectsPerGrid:   region.AvgDefectsPerGrid,
			Subgrids:            strings.Join(region.Subgrids, ","),
		})
	}

	for _, cell := range response.Cells {
		run.Cells = append(run.Cells, model.RunCell{
			RunID:         runID,
			PanelLabel:    cell.PanelLabel,
			SubRow:        cell.SubRow,
			SubCol:        cell.SubCol,
			GlobalRow:     cell.GlobalRow,
			GlobalCol:     cell.GlobalCol,
			RawCount:      cell.RawCount,
			NoiseEstimate: cell.NoiseEstimate,
			CleanedCount:  cell.CleanedCount,
			RegionID:      cell.RegionID,
		})
	}

	s.logger.Infof("Сохраняем запуск в БД. Регионов: %d, ячеек: %d", len(run.Regions), len(run.Cells))
	if err := s.runRepo.Create(run); err != nil {
		s.logger.Errorf("Ошибка сохранения запуска в БД: %v", err)
		return fmt.Errorf("failed to save analysis run: %w", err)
	}

	s.logger.Infof("Запуск %s успешно сохранен", runID)
	return nil
}

// GetRunByID получает запуск анализа по ID
func (s *RunService) GetRunByID(runID string) (*RunResponse, error) {
	s.logger.Infof("Получаем запуск анализа %s из базы данных", runID)

	run, err := s.runRepo.GetByID(runID)
	if err != nil {
		s.logger.Errorf("Ошибка получения запуска: %v", err)
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}

	return s.modelToResponse(run), nil
}

// ListRuns получает список запусков анализа с пагинацией
func (s *RunService) ListRuns(page, pageSize int) ([]RunResponse, int64, error) {
	s.logger.Infof("Получаем список запусков: страница %d, размер %d", page, pageSize)

	runs, total, err := s.runRepo.List(page, pageSize)
	if err != nil {
		s.logger.Errorf("Ошибка получения списка запусков: %v", err)
		return nil, 0, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	responses := make([]RunResponse, len(runs))
	for i, run := range runs {
		responses[i] = *s.modelToResponse(run)
	}

	s.logger.Infof("Получено %d запусков из %d общих", len(responses), total)
	return responses, total, nil
}

// DeleteRun удаляет запуск анализа по ID
func (s *RunService) DeleteRun(runID string) error {
	s.logger.Infof("Удаляем запуск анализа %s", runID)

	if err := s.runRepo.Delete(runID); err != nil {
		s.logger.Errorf("Ошибка удаления запуска из БД: %v", err)
		return fmt.Errorf("failed to delete analysis run: %w", err)
	}

	s.logger.Infof("Запуск %s успешно удален", runID)
	return nil
}

// modelToResponse преобразует модель базы данных в ответ API
func (s *RunService) modelToResponse(run *model.AnalysisRun) *RunResponse {
	response := &RunResponse{
		ID:   run.ID,
		Name: run.Name,
		Options: models.AnalysisOptions{
			SubGridRows:    run.SubGridRows,
			SubGridCols:    run.SubGridCols,
			NoiseThreshold: run.NoiseThreshold,
			Connectivity:   run.Connectivity,
		},
		OverallStats: models.OverallStats{
			PanelCount:      run.PanelCount,
			InputDefects:    run.InputDefects,
			OutliersRemoved: run.OutliersRemoved,
			ValidDefects:    run.InputDefects - run.OutliersRemoved,
			TotalCells:      run.TotalCells,
			TotalRegions:    run.TotalRegions,
		},
		CreatedAt: run.CreatedAt,
	}

	for _, region := range run.Regions {
		var subgrids []string
		if region.Subgrids != "" {
			subgrids = strings.Split(region.Subgrids, ",")
		}
		response.Regions = append(response.Regions, models.RegionInfo{
			RegionID:            region.RegionID,
			TotalDefectsCleaned: region.TotalDefectsCleaned,
			SubgridCount:        region.SubgridCount,
			AvgDefectsPerGrid:   region.AvgDefectsPerGrid,
			Subgrids:            subgrids,
		})
	}

	for _, cell := range run.Cells {
		response.Cells = append(response.Cells, models.CellInfo{
			SubGridID:     fmt.Sprintf("%s-%s%d", cell.PanelLabel, cell.SubCol, cell.SubRow),
			PanelLabel:    cell.PanelLabel,
			SubRow:        cell.SubRow,
			SubCol:        cell.SubCol,
			GlobalRow:     cell.GlobalRow,
			GlobalCol:     cell.GlobalCol,
			RawCount:      cell.RawCount,
			NoiseEstimate: cell.NoiseEstimate,
			CleanedCount:  cell.CleanedCount,
			RegionID:      cell.RegionID,
		})
	}

	return response
}
