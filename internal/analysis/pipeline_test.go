package analysis

import (
	"reflect"
	"testing"
)

// scenarioDefects собирает кластеры сквозного сценария: 30 дефектов в
// нижней правой ячейке A1, 28 в нижней левой ячейке B1, плюс выбросы
func scenarioDefects() []Defect {
	var defects []Defect
	for i := 0; i < 30; i++ {
		defects = append(defects, NewDefect(75+float64(i%5), 10+float64(i/5)))
	}
	for i := 0; i < 28; i++ {
		defects = append(defects, NewDefect(160+float64(i%4), 10+float64(i/4)))
	}
	// Шум в физическом зазоре между колонками
	for i := 0; i < 10; i++ {
		defects = append(defects, NewDefect(110+float64(i*3), 50))
	}
	return defects
}

func scenarioOptions() Options {
	opts := DefaultOptions()
	opts.SubGridRows = 2
	opts.SubGridCols = 2
	opts.Estimator = fixedEstimator{value: 2}
	return opts
}

func TestRunEndToEndScenario(t *testing.T) {
	// 2 колонки x 1 строка панелей, разбиение 2x2, зазор 50 между
	// колонками. Кластер сидит по обе стороны стыка.
	result, err := Run(twoByOne(), scenarioDefects(), scenarioOptions())
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}

	if result.InputDefects != 68 || result.FilteredOut != 10 {
		t.Fatalf("фильтрация: вход %d, отброшено %d", result.InputDefects, result.FilteredOut)
	}

	byID := make(map[string]*Cell, len(result.Cells))
	for i := range result.Cells {
		byID[result.Cells[i].ID()] = &result.Cells[i]
	}

	// Очищенные счетчики: 30-2 и 28-2 в кластере, ноль в остальных
	for id, want := range map[string]float64{
		"A1-b1": 28,
		"B1-a1": 26,
	} {
		cell, ok := byID[id]
		if !ok {
			t.Fatalf("ячейка %s не найдена", id)
		}
		if cell.CleanedCount != want {
			t.Errorf("%s: cleaned %v, ожидалось %v", id, cell.CleanedCount, want)
		}
	}
	for id, cell := range byID {
		if id == "A1-b1" || id == "B1-a1" {
			continue
		}
		if cell.CleanedCount != 0 {
			t.Errorf("%s: cleaned %v, ожидался 0", id, cell.CleanedCount)
		}
	}

	// Ровно один регион через стык панелей
	if len(result.Regions) != 1 {
		t.Fatalf("ожидался 1 регион, получено %d", len(result.Regions))
	}
	region := result.Regions[0]
	if region.CellCount != 2 {
		t.Errorf("размер региона %d, ожидалось 2", region.CellCount)
	}
	if region.TotalCleaned != 54 {
		t.Errorf("сумма региона %v, ожидалось 54", region.TotalCleaned)
	}
	if region.AvgDensity != 27.00 {
		t.Errorf("средняя плотность %v, ожидалось 27.00", region.AvgDensity)
	}
}

func TestRunCrossSeamDiagonal(t *testing.T) {
	// Активные ячейки касаются стыка по диагонали в глобальных
	// индексах: последняя колонка A1 в строке 1, первая колонка B1
	// в строке 2. Без непрерывных индексов это были бы два региона.
	defects := []Defect{
		NewDefect(75, 25),  // A1-b1
		NewDefect(175, 75), // B1-a2
	}

	opts := scenarioOptions()
	opts.Estimator = fixedEstimator{value: 0}

	result, err := Run(twoByOne(), defects, opts)
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}

	if len(result.Regions) != 1 {
		t.Fatalf("диагональ через стык: ожидался 1 регион, получено %d", len(result.Regions))
	}
	if result.Regions[0].CellCount != 2 {
		t.Errorf("размер региона %d, ожидалось 2", result.Regions[0].CellCount)
	}

	// Та же пара при 4-связности дает два региона
	opts.Connectivity = 4
	result, err = Run(twoByOne(), defects, opts)
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}
	if len(result.Regions) != 2 {
		t.Fatalf("4-связность: ожидалось 2 региона, получено %d", len(result.Regions))
	}
}

func TestRunCountConservation(t *testing.T) {
	result, err := Run(twoByOne(), scenarioDefects(), scenarioOptions())
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}

	sum := 0
	for _, c := range result.Cells {
		sum += c.RawCount
	}
	if sum != len(result.Defects) {
		t.Fatalf("сумма сырых счетчиков %d не равна числу дефектов %d", sum, len(result.Defects))
	}
}

func TestRunDeterministic(t *testing.T) {
	first, err := Run(twoByOne(), scenarioDefects(), scenarioOptions())
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}
	second, err := Run(twoByOne(), scenarioDefects(), scenarioOptions())
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}

	if !reflect.DeepEqual(first.Cells, second.Cells) {
		t.Fatal("повторный запуск дал другие ячейки")
	}
	if !reflect.DeepEqual(first.Regions, second.Regions) {
		t.Fatal("повторный запуск дал другие регионы")
	}
}

func TestRunEmptyDefects(t *testing.T) {
	// Пустой набор дефектов - валидный вход с пустым отчетом
	result, err := Run(twoByOne(), nil, scenarioOptions())
	if err != nil {
		t.Fatalf("ошибка конвейера: %v", err)
	}
	if len(result.Regions) != 0 {
		t.Fatalf("пустой вход дал %d регионов", len(result.Regions))
	}
	if len(result.Cells) != 8 {
		t.Fatalf("сетка не построена: %d ячеек", len(result.Cells))
	}
}

func TestRunRejectsBadLayout(t *testing.T) {
	panels := []Panel{
		{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
		{Label: "B1", Column: 1, Row: 0, Box: Box{MinX: 90, MaxX: 190, MinY: 0, MaxY: 100}},
	}

	if _, err := Run(panels, nil, DefaultOptions()); err == nil {
		t.Fatal("пересекающаяся раскладка должна отклоняться до трансформаций")
	}
}
