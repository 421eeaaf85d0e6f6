package model

import (
	"time"

	"gorm.io/gorm"
)

// AnalysisRun представляет один запуск анализа в базе данных
type AnalysisRun struct {
	ID   string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`

	// Параметры запуска
	SubGridRows    int     `gorm:"not null" json:"sub_grid_rows"`
	SubGridCols    int     `gorm:"not null" json:"sub_grid_cols"`
	NoiseThreshold float64 `gorm:"not null;default:0" json:"noise_threshold"`
	Connectivity   int     `gorm:"not null;default:8" json:"connectivity"`

	// Общая статистика
	PanelCount      int `gorm:"not null;default:0" json:"panel_count"`
	InputDefects    int `gorm:"not null;default:0" json:"input_defects"`
	OutliersRemoved int `gorm:"not null;default:0" json:"outliers_removed"`
	TotalCells      int `gorm:"not null;default:0" json:"total_cells"`
	TotalRegions    int `gorm:"not null;default:0" json:"total_regions"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Связь с регионами и ячейками
	Regions []RunRegion `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"regions"`
	Cells   []RunCell   `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"cells"`
}

// RunRegion представляет обнаруженный регион дефектов в базе данных
type RunRegion struct {
	ID                  uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID               string  `gorm:"type:varchar(36);not null;index" json:"run_id"`
	RegionID            int     `gorm:"not null" json:"region_id"`
	TotalDefectsCleaned float64 `gorm:"not null" json:"total_defects_cleaned"`
	SubgridCount        int     `gorm:"not null" json:"subgrid_count"`
	AvgDefectsPerGrid   float64 `gorm:"not null" json:"avg_defects_per_grid"`
	Subgrids            string  `gorm:"type:text" json:"subgrids"` // Идентификаторы ячеек через запятую

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Обратная связь с запуском
	Run AnalysisRun `gorm:"foreignKey:RunID;references:ID" json:"-"`
}

// RunCell представляет ячейку суб-сетки с результатами подсчета
type RunCell struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	RunID         string  `gorm:"type:varchar(36);not null;index" json:"run_id"`
	PanelLabel    string  `gorm:"type:varchar(16);not null" json:"panel_label"`
	SubRow        int     `gorm:"not null" json:"sub_row"`
	SubCol        string  `gorm:"type:varchar(1);not null" json:"sub_col"`
	GlobalRow     int     `gorm:"not null" json:"global_row"`
	GlobalCol     int     `gorm:"not null" json:"global_col"`
	RawCount      int     `gorm:"not null" json:"raw_count"`
	NoiseEstimate float64 `gorm:"not null" json:"noise_estimate"`
	CleanedCount  float64 `gorm:"not null" json:"cleaned_count"`
	RegionID      int     `gorm:"not null;default:0" json:"region_id"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// Обратная связь с запуском
	Run AnalysisRun `gorm:"foreignKey:RunID;references:ID" json:"-"`
}

// Recipient представляет получателя уведомлений о завершении анализа
type Recipient struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Name  string `gorm:"type:varchar(255)" json:"name"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName указывает имя таблицы для AnalysisRun
func (AnalysisRun) TableName() string {
	return "analysis_runs"
}

// TableName указывает имя таблицы для RunRegion
func (RunRegion) TableName() string {
	return "run_regions"
}

// TableName указывает имя таблицы для RunCell
func (RunCell) TableName() string {
	return "run_cells"
}

// TableName указывает имя таблицы для Recipient
func (Recipient) TableName() string {
	return "recipients"
}
