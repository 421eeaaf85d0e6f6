package models

// PanelSpec описывает одну физическую панель входного набора данных
type PanelSpec struct {
	Label  string  `json:"label"`  // Уникальная метка, например "A1"
	Column int     `json:"column"` // Индекс колонки в раскладке (с нуля)
	Row    int     `json:"row"`    // Индекс строки в раскладке (с нуля)
	XMin   float64 `json:"x_min"`  // Физические границы панели
	XMax   float64 `json:"x_max"`
	YMin   float64 `json:"y_min"`
	YMax   float64 `json:"y_max"`
}

// DefectPoint описывает точечный дефект в физических координатах
type DefectPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AnalysisOptions позволяет перекрыть параметры анализа в запросе.
// Нулевое значение означает "взять значение из конфигурации сервиса".
type AnalysisOptions struct {
	SubGridRows    int     `json:"sub_grid_rows"`   // Разбиение панели по вертикали
	SubGridCols    int     `json:"sub_grid_cols"`   // Разбиение панели по горизонтали
	NoiseThreshold float64 `json:"noise_threshold"` // Порог активности ячейки
	Connectivity   int     `json:"connectivity"`    // Связность регионов: 4 или 8
}

// AnalyzeRequest представляет запрос на анализ плотности дефектов
type AnalyzeRequest struct {
	Name    string          `json:"name"`    // Человекочитаемое имя запуска
	Panels  []PanelSpec     `json:"panels"`  // Раскладка панелей
	Defects []DefectPoint   `json:"defects"` // Дефекты в физических координатах
	Options AnalysisOptions `json:"options"` // Перекрытие параметров анализа
}

// RegionInfo содержит строку итоговой таблицы регионов
type RegionInfo struct {
	RegionID            int      `json:"region_id"`             // ID в порядке обнаружения
	TotalDefectsCleaned float64  `json:"total_defects_cleaned"` // Сумма очищенных счетчиков
	SubgridCount        int      `json:"subgrid_count"`         // Количество ячеек в регионе
	AvgDefectsPerGrid   float64  `json:"avg_defects_per_grid"`  // Средняя плотность, 2 знака
	Subgrids            []string `json:"subgrids"`              // Идентификаторы ячеек вида "H5-a3"
}

// CellInfo содержит данные одной ячейки суб-сетки для визуализации
type CellInfo struct {
	SubGridID     string  `json:"sub_grid_id"` // Идентификатор вида "H5-a3"
	PanelLabel    string  `json:"panel_label"`
	SubRow        int     `json:"sub_row"`
	SubCol        string  `json:"sub_col"`
	GlobalRow     int     `json:"global_row"`
	GlobalCol     int     `json:"global_col"`
	RawCount      int     `json:"raw_count"`
	NoiseEstimate float64 `json:"noise_estimate"`
	CleanedCount  float64 `json:"cleaned_count"`
	RegionID      int     `json:"region_id"` // 0 - вне регионов
}

// OverallStats содержит общую статистику запуска анализа
type OverallStats struct {
	PanelCount      int `json:"panel_count"`      // Количество панелей
	InputDefects    int `json:"input_defects"`    // Дефектов на входе
	OutliersRemoved int `json:"outliers_removed"` // Отброшено фильтром выбросов
	ValidDefects    int `json:"valid_defects"`    // Дефектов после фильтрации
	TotalCells      int `json:"total_cells"`      // Ячеек суб-сетки
	TotalRegions    int `json:"total_regions"`    // Обнаруженных регионов
}

// AnalyzeResponse представляет ответ анализа плотности дефектов
type AnalyzeResponse struct {
	Status       string       `json:"status"`  // Статус выполнения (success/error)
	Message      string       `json:"message"` // Сообщение о результате
	RunID        string       `json:"run_id"`  // ID сохраненного запуска
	OverallStats OverallStats `json:"overall_stats"`
	Regions      []RegionInfo `json:"regions"` // Отсортированы по total_defects_cleaned
	Cells        []CellInfo   `json:"cells"`   // Вторичная поверхность данных
}

// HealthResponse представляет ответ проверки здоровья сервиса
type HealthResponse struct {
	Status   string `json:"status"`   // Статус сервиса (healthy/unhealthy)
	Database bool   `json:"database"` // Доступность базы данных
	Version  string `json:"version"`  // Версия сервиса
}
