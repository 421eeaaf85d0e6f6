package analysis

// Options задает параметры анализа. Явная структура вместо
// констант уровня пакета: каждый запуск несет свои настройки.
type Options struct {
	SubGridRows    int            // Разбиение панели по вертикали, по умолчанию 3
	SubGridCols    int            // Разбиение панели по горизонтали, по умолчанию 3
	NoiseThreshold float64        // Порог активности ячейки, по умолчанию 0
	Connectivity   int            // Связность регионов 4 или 8, по умолчанию 8
	Estimator      NoiseEstimator // Оценщик шума, по умолчанию медиана
}

// DefaultOptions возвращает параметры анализа по умолчанию
func DefaultOptions() Options {
	return Options{
		SubGridRows:    3,
		SubGridCols:    3,
		NoiseThreshold: 0,
		Connectivity:   8,
		Estimator:      PercentileEstimator{Quantile: 0.5},
	}
}

// Result - итог полного прохода конвейера анализа
type Result struct {
	Panels       []Panel  // Панели с заполненными очищенными границами
	Defects      []Defect // Выжившие дефекты в обеих системах координат
	Cells        []Cell   // Все ячейки суб-сетки с счетчиками и регионами
	Regions      []Region // Регионы, отсортированные для отчета
	InputDefects int      // Дефектов на входе
	FilteredOut  int      // Отброшено фильтром выбросов
}

// Run выполняет строгий линейный конвейер: валидация раскладки,
// фильтр выбросов, удаление зазоров, суб-сетка, подсчет, вычитание
// шума, разметка регионов. Детерминирован: одинаковый вход дает
// одинаковые регионы, членство и порядок.
func Run(panels []Panel, defects []Defect, opts Options) (*Result, error) {
	if err := ValidateLayout(panels); err != nil {
		return nil, err
	}

	estimator := opts.Estimator
	if estimator == nil {
		estimator = PercentileEstimator{Quantile: 0.5}
	}

	valid := FilterOutliers(defects, panels)

	shiftX, shiftY := ResolveGaps(panels)
	cleanPanels, cleanDefects := ApplyShifts(panels, valid, shiftX, shiftY)

	cells, err := BuildSubgrid(cleanPanels, opts.SubGridRows, opts.SubGridCols)
	if err != nil {
		return nil, err
	}

	CountDefects(cells, cleanDefects)
	RemoveNoise(cells, estimator)

	regions, err := DetectRegions(cells, opts.NoiseThreshold, opts.Connectivity)
	if err != nil {
		return nil, err
	}

	return &Result{
		Panels:       cleanPanels,
		Defects:      cleanDefects,
		Cells:        cells,
		Regions:      regions,
		InputDefects: len(defects),
		FilteredOut:  len(defects) - len(valid),
	}, nil
}
