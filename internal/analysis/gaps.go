package analysis

import "sort"

// gapTolerance отсекает погрешность float при сравнении границ панелей.
// Зазор меньше допуска считается отсутствующим.
const gapTolerance = 1e-3

// ShiftMap хранит накопленный сдвиг удаления зазоров
// по индексу колонки (ось X) или строки (ось Y).
type ShiftMap map[int]float64

// Shift возвращает сдвиг для индекса, ноль для неизвестного
func (m ShiftMap) Shift(index int) float64 {
	return m[index]
}

// ResolveGaps вычисляет карты сдвигов по обеим осям. Интервалы колонок
// обходятся в порядке физического положения; зазор перед интервалом
// прибавляется к накопленному сдвигу, так что применение сдвига
// стыкует панели без изменения их внутренней геометрии.
func ResolveGaps(panels []Panel) (shiftX, shiftY ShiftMap) {
	type span struct {
		index    int
		min, max float64
	}

	colSpans := make(map[int]span)
	rowSpans := make(map[int]span)
	for _, p := range panels {
		if _, ok := colSpans[p.Column]; !ok {
			colSpans[p.Column] = span{index: p.Column, min: p.Box.MinX, max: p.Box.MaxX}
		}
		if _, ok := rowSpans[p.Row]; !ok {
			rowSpans[p.Row] = span{index: p.Row, min: p.Box.MinY, max: p.Box.MaxY}
		}
	}

	accumulate := func(spans map[int]span) ShiftMap {
		ordered := make([]span, 0, len(spans))
		for _, s := range spans {
			ordered = append(ordered, s)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i].min < ordered[j].min })

		shifts := make(ShiftMap, len(ordered))
		current := 0.0
		prevEnd := 0.0
		for i, s := range ordered {
			if i > 0 {
				if gap := s.min - prevEnd; gap > gapTolerance {
					current += gap
				}
			}
			shifts[s.index] = current
			prevEnd = s.max
		}
		return shifts
	}

	return accumulate(colSpans), accumulate(rowSpans)
}

// ApplyShifts применяет карты сдвигов к панелям и дефектам, порождая
// очищенные координаты. Оригинальные координаты сохраняются без
// изменений на каждой сущности. Принадлежность дефекта определяется
// по панели, а не чистой геометрией, чтобы исключить неоднозначность
// ровно на границе удаленного зазора.
func ApplyShifts(panels []Panel, defects []Defect, shiftX, shiftY ShiftMap) ([]Panel, []Defect) {
	shifted := make([]Panel, len(panels))
	for i, p := range panels {
		dx := shiftX.Shift(p.Column)
		dy := shiftY.Shift(p.Row)
		p.Clean = Box{
			MinX: p.Box.MinX - dx,
			MaxX: p.Box.MaxX - dx,
			MinY: p.Box.MinY - dy,
			MaxY: p.Box.MaxY - dy,
		}
		shifted[i] = p
	}

	transformed := make([]Defect, len(defects))
	for i, d := range defects {
		d.CleanX = d.OrigX
		d.CleanY = d.OrigY
		for _, p := range panels {
			if p.Box.Contains(d.OrigX, d.OrigY) {
				d.CleanX = d.OrigX - shiftX.Shift(p.Column)
				d.CleanY = d.OrigY - shiftY.Shift(p.Row)
				break
			}
		}
		transformed[i] = d
	}

	return shifted, transformed
}
