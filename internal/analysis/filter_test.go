package analysis

import "testing"

func TestFilterOutliers(t *testing.T) {
	panels := twoByOne()

	defects := []Defect{
		NewDefect(50, 50),   // внутри A1
		NewDefect(200, 50),  // внутри B1
		NewDefect(0, 0),     // угол A1, закрытая граница
		NewDefect(100, 100), // противоположный угол A1
		NewDefect(120, 50),  // в зазоре между панелями
		NewDefect(-10, 50),  // левее всех панелей
		NewDefect(50, 300),  // выше всех панелей
	}

	valid := FilterOutliers(defects, panels)

	if len(valid) != 4 {
		t.Fatalf("ожидалось 4 валидных дефекта, получено %d", len(valid))
	}

	// Каждый выживший дефект лежит внутри хотя бы одной панели
	for _, d := range valid {
		inside := false
		for _, p := range panels {
			if p.Box.Contains(d.OrigX, d.OrigY) {
				inside = true
				break
			}
		}
		if !inside {
			t.Errorf("дефект (%v, %v) вне всех панелей", d.OrigX, d.OrigY)
		}
	}
}

func TestFilterOutliersNoDuplicatesOnAbuttingPanels(t *testing.T) {
	// Панели стыкуются без зазора, точка ровно на общем ребре
	panels := []Panel{
		{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
		{Label: "B1", Column: 1, Row: 0, Box: Box{MinX: 100, MaxX: 200, MinY: 0, MaxY: 100}},
	}

	valid := FilterOutliers([]Defect{NewDefect(100, 50)}, panels)
	if len(valid) != 1 {
		t.Fatalf("точка на общем ребре продублирована: %d", len(valid))
	}
}

func TestFilterOutliersEmptyInput(t *testing.T) {
	valid := FilterOutliers(nil, twoByOne())
	if len(valid) != 0 {
		t.Fatalf("пустой вход дал %d дефектов", len(valid))
	}
}
