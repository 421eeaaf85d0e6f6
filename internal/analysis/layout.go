package analysis

import "fmt"

// ValidateLayout проверяет, что панели образуют полную прямоугольную
// раскладку колонок и строк без дыр, дублей и пересечений.
// Любое нарушение возвращается как *LayoutError.
func ValidateLayout(panels []Panel) error {
	if len(panels) == 0 {
		return &LayoutError{Reason: "panel set is empty"}
	}

	maxCol, maxRow := 0, 0
	labels := make(map[string]bool, len(panels))
	positions := make(map[[2]int]string, len(panels))

	for _, p := range panels {
		if p.Box.MinX >= p.Box.MaxX || p.Box.MinY >= p.Box.MaxY {
			return &LayoutError{Reason: fmt.Sprintf("panel %s has a degenerate bounding box", p.Label)}
		}
		if p.Column < 0 || p.Row < 0 {
			return &LayoutError{Reason: fmt.Sprintf("panel %s has negative grid position (%d, %d)", p.Label, p.Column, p.Row)}
		}
		if labels[p.Label] {
			return &LayoutError{Reason: fmt.Sprintf("duplicate panel label %s", p.Label)}
		}
		labels[p.Label] = true

		pos := [2]int{p.Column, p.Row}
		if other, ok := positions[pos]; ok {
			return &LayoutError{Reason: fmt.Sprintf("panels %s and %s occupy the same grid position (%d, %d)", other, p.Label, p.Column, p.Row)}
		}
		positions[pos] = p.Label

		if p.Column > maxCol {
			maxCol = p.Column
		}
		if p.Row > maxRow {
			maxRow = p.Row
		}
	}

	// Полная прямоугольная раскладка: каждая позиция занята ровно один раз
	if len(panels) != (maxCol+1)*(maxRow+1) {
		for c := 0; c <= maxCol; c++ {
			for r := 0; r <= maxRow; r++ {
				if _, ok := positions[[2]int{c, r}]; !ok {
					return &LayoutError{Reason: fmt.Sprintf("layout has a hole at grid position (%d, %d)", c, r)}
				}
			}
		}
	}

	// Панели одной колонки обязаны разделять X-интервал, одной строки - Y-интервал.
	// На этом держится интервальная карта сдвигов при удалении зазоров.
	colSpan := make(map[int][2]float64)
	rowSpan := make(map[int][2]float64)
	for _, p := range panels {
		if span, ok := colSpan[p.Column]; ok {
			if span[0] != p.Box.MinX || span[1] != p.Box.MaxX {
				return &LayoutError{Reason: fmt.Sprintf("panel %s does not align with column %d extent", p.Label, p.Column)}
			}
		} else {
			colSpan[p.Column] = [2]float64{p.Box.MinX, p.Box.MaxX}
		}
		if span, ok := rowSpan[p.Row]; ok {
			if span[0] != p.Box.MinY || span[1] != p.Box.MaxY {
				return &LayoutError{Reason: fmt.Sprintf("panel %s does not align with row %d extent", p.Label, p.Row)}
			}
		} else {
			rowSpan[p.Row] = [2]float64{p.Box.MinY, p.Box.MaxY}
		}
	}

	for i := 0; i < len(panels); i++ {
		for j := i + 1; j < len(panels); j++ {
			if panels[i].Box.Overlaps(panels[j].Box) {
				return &LayoutError{Reason: fmt.Sprintf("panels %s and %s overlap", panels[i].Label, panels[j].Label)}
			}
		}
	}

	return nil
}
