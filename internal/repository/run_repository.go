package repository

import (
	"fmt"

	"gorm.io/gorm"

	"grid-analyzer-go/internal/model"
)

// RunRepository интерфейс для работы с запусками анализа
type RunRepository interface {
	Create(run *model.AnalysisRun) error
	GetByID(id string) (*model.AnalysisRun, error)
	List(page, pageSize int) ([]*model.AnalysisRun, int64, error)
	Delete(id string) error
}

// runRepository реализация RunRepository
type runRepository struct {
	db *gorm.DB
}

// NewRunRepository создает новый instance RunRepository
func NewRunRepository(db *gorm.DB) RunRepository {
	return &runRepository{
		db: db,
	}
}

// Create создает новый запуск анализа вместе с регионами и ячейками
func (r *runRepository) Create(run *model.AnalysisRun) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Сначала создаем запуск
	regions := run.Regions
	cells := run.Cells
	run.Regions = nil
	run.Cells = nil
	if err := tx.Create(run).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to create analysis run: %w", err)
	}

	// Затем создаем регионы
	for i := range regions {
		regions[i].ID = 0 // Обнуляем ID для auto-increment
		regions[i].RunID = run.ID
		if err := tx.Create(&regions[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create region %d: %w", i, err)
		}
	}

	// И ячейки суб-сетки
	for i := range cells {
		cells[i].ID = 0
		cells[i].RunID = run.ID
		if err := tx.Create(&cells[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create cell %d: %w", i, err)
		}
	}

	run.Regions = regions
	run.Cells = cells

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID получает запуск анализа по ID
func (r *runRepository) GetByID(id string) (*model.AnalysisRun, error) {
	var run model.AnalysisRun
	err := r.db.Preload("Regions").Preload("Cells").Where("id = ?", id).First(&run).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("analysis run with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get analysis run: %w", err)
	}
	return &run, nil
}

// List получает список запусков с пагинацией
func (r *runRepository) List(page, pageSize int) ([]*model.AnalysisRun, int64, error) {
	var runs []*model.AnalysisRun
	var total int64

	// Подсчитываем общее количество
	if err := r.db.Model(&model.AnalysisRun{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count analysis runs: %w", err)
	}

	// Получаем запуски с пагинацией, без тяжелых ячеек
	offset := (page - 1) * pageSize
	err := r.db.Preload("Regions").
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&runs).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analysis runs: %w", err)
	}

	return runs, total, nil
}

// Delete удаляет запуск анализа по ID
func (r *runRepository) Delete(id string) error {
	tx := r.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Сначала удаляем регионы и ячейки
	if err := tx.Where("run_id = ?", id).Delete(&model.RunRegion{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete regions: %w", err)
	}
	if err := tx.Where("run_id = ?", id).Delete(&model.RunCell{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete cells: %w", err)
	}

	// Затем удаляем запуск
	result := tx.Where("id = ?", id).Delete(&model.AnalysisRun{})
	if result.Error != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete analysis run: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		tx.Rollback()
		return fmt.Errorf("analysis run with id %s not found", id)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
