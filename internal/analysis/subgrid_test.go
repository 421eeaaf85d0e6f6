package analysis

import (
	"errors"
	"testing"
)

// cleanTwoByOne возвращает раскладку 2x1 с уже удаленными зазорами
func cleanTwoByOne() []Panel {
	panels := twoByOne()
	shiftX, shiftY := ResolveGaps(panels)
	clean, _ := ApplyShifts(panels, nil, shiftX, shiftY)
	return clean
}

func TestBuildSubgridLocalLabels(t *testing.T) {
	cells, err := BuildSubgrid(cleanTwoByOne(), 2, 2)
	if err != nil {
		t.Fatalf("ошибка построения сетки: %v", err)
	}

	if len(cells) != 8 {
		t.Fatalf("ожидалось 8 ячеек, получено %d", len(cells))
	}

	ids := make(map[string]Cell, len(cells))
	for _, c := range cells {
		ids[c.ID()] = c
	}

	// Нижняя левая ячейка панели A1: колонка 'a', строка 1 снизу
	c, ok := ids["A1-a1"]
	if !ok {
		t.Fatal("ячейка A1-a1 не найдена")
	}
	if c.GlobalRow != 0 || c.GlobalCol != 0 {
		t.Errorf("A1-a1 глобальный индекс (%d, %d), ожидался (0, 0)", c.GlobalRow, c.GlobalCol)
	}
	if c.CleanBox.MinX != 0 || c.CleanBox.MinY != 0 {
		t.Errorf("A1-a1 границы %+v", c.CleanBox)
	}

	// Верхняя правая ячейка панели B1, глобальные индексы непрерывны через стык
	c, ok = ids["B1-b2"]
	if !ok {
		t.Fatal("ячейка B1-b2 не найдена")
	}
	if c.GlobalRow != 1 || c.GlobalCol != 3 {
		t.Errorf("B1-b2 глобальный индекс (%d, %d), ожидался (1, 3)", c.GlobalRow, c.GlobalCol)
	}
	if c.CleanBox.MaxX != 200 || c.CleanBox.MaxY != 100 {
		t.Errorf("B1-b2 границы %+v", c.CleanBox)
	}
}

func TestBuildSubgridGlobalIndexDensity(t *testing.T) {
	// Раскладка 2x2 панелей, разбиение 3x3
	panels := []Panel{
		{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 90, MinY: 0, MaxY: 60}},
		{Label: "B1", Column: 1, Row: 0, Box: Box{MinX: 100, MaxX: 190, MinY: 0, MaxY: 60}},
		{Label: "A2", Column: 0, Row: 1, Box: Box{MinX: 0, MaxX: 90, MinY: 80, MaxY: 140}},
		{Label: "B2", Column: 1, Row: 1, Box: Box{MinX: 100, MaxX: 190, MinY: 80, MaxY: 140}},
	}
	shiftX, shiftY := ResolveGaps(panels)
	clean, _ := ApplyShifts(panels, nil, shiftX, shiftY)

	cells, err := BuildSubgrid(clean, 3, 3)
	if err != nil {
		t.Fatalf("ошибка построения сетки: %v", err)
	}

	totalRows, totalCols := 2*3, 2*3
	if len(cells) != totalRows*totalCols {
		t.Fatalf("ожидалось %d ячеек, получено %d", totalRows*totalCols, len(cells))
	}

	// Глобальные индексы покрывают прямоугольник без дублей и дыр
	seen := make(map[[2]int]bool, len(cells))
	for _, c := range cells {
		key := [2]int{c.GlobalRow, c.GlobalCol}
		if seen[key] {
			t.Errorf("дубликат глобального индекса (%d, %d)", c.GlobalRow, c.GlobalCol)
		}
		seen[key] = true
		if c.GlobalRow < 0 || c.GlobalRow >= totalRows || c.GlobalCol < 0 || c.GlobalCol >= totalCols {
			t.Errorf("глобальный индекс (%d, %d) вне диапазона", c.GlobalRow, c.GlobalCol)
		}
	}
	if len(seen) != totalRows*totalCols {
		t.Errorf("покрыто %d позиций из %d", len(seen), totalRows*totalCols)
	}
}

func TestBuildSubgridSeamEdgesExact(t *testing.T) {
	cells, err := BuildSubgrid(cleanTwoByOne(), 2, 2)
	if err != nil {
		t.Fatalf("ошибка построения сетки: %v", err)
	}

	// Край последней ячейки панели совпадает с краем панели,
	// ячейки по обе стороны стыка разделяют ребро точно
	var rightOfA, leftOfB *Cell
	for i := range cells {
		if cells[i].ID() == "A1-b1" {
			rightOfA = &cells[i]
		}
		if cells[i].ID() == "B1-a1" {
			leftOfB = &cells[i]
		}
	}
	if rightOfA == nil || leftOfB == nil {
		t.Fatal("ячейки у стыка не найдены")
	}
	if rightOfA.CleanBox.MaxX != leftOfB.CleanBox.MinX {
		t.Errorf("ребро стыка не точное: %v != %v", rightOfA.CleanBox.MaxX, leftOfB.CleanBox.MinX)
	}
}

func TestBuildSubgridConfigurationErrors(t *testing.T) {
	clean := cleanTwoByOne()

	tests := []struct {
		name       string
		rows, cols int
	}{
		{name: "ноль строк", rows: 0, cols: 3},
		{name: "отрицательные колонки", rows: 3, cols: -1},
		{name: "колонок больше букв", rows: 3, cols: 27},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSubgrid(clean, tt.rows, tt.cols)
			if err == nil {
				t.Fatal("ожидалась ошибка конфигурации")
			}
			var configErr *ConfigurationError
			if !errors.As(err, &configErr) {
				t.Fatalf("ожидался *ConfigurationError, получен %T", err)
			}
		})
	}
}
