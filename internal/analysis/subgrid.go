package analysis

import (
	"fmt"
	"sort"
)

// Cell представляет одну ячейку суб-сетки панели. Локальный адрес -
// буква колонки слева направо и номер строки снизу вверх внутри
// панели. Глобальный индекс непрерывен через стыки панелей после
// удаления зазоров, что и делает межпанельную связность осмысленной.
type Cell struct {
	PanelLabel string `json:"panel_label"`
	SubRow     int    `json:"sub_row"` // 1..N, снизу вверх
	SubCol     int    `json:"sub_col"` // 0..M-1, буква 'a'+SubCol

	GlobalRow int `json:"global_row"`
	GlobalCol int `json:"global_col"`

	CleanBox Box `json:"clean_box"` // Границы в очищенных координатах

	RawCount      int     `json:"raw_count"`
	NoiseEstimate float64 `json:"noise_estimate"`
	CleanedCount  float64 `json:"cleaned_count"`
	RegionID      int     `json:"region_id"` // 0 - вне регионов
}

// ID возвращает идентификатор ячейки вида "H5-a3"
func (c *Cell) ID() string {
	return fmt.Sprintf("%s-%c%d", c.PanelLabel, 'a'+c.SubCol, c.SubRow)
}

// BuildSubgrid разбивает каждую панель на rows x cols равных ячеек по
// очищенным границам и назначает глобальные индексы. Возвращаемый
// порядок детерминирован: панели по строкам и колонкам раскладки,
// внутри панели - по строкам снизу вверх, затем по колонкам.
func BuildSubgrid(panels []Panel, rows, cols int) ([]Cell, error) {
	if rows < 1 || cols < 1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("sub-grid split %dx%d must be at least 1x1", rows, cols)}
	}
	if cols > 26 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("sub-grid columns %d exceed letter labels a..z", cols)}
	}

	ordered := make([]Panel, len(panels))
	copy(ordered, panels)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Row != ordered[j].Row {
			return ordered[i].Row < ordered[j].Row
		}
		return ordered[i].Column < ordered[j].Column
	})

	cells := make([]Cell, 0, len(ordered)*rows*cols)
	for _, p := range ordered {
		// Границы считаются долями от целой панели, чтобы край последней
		// ячейки совпадал с краем панели без накопления погрешности
		xEdge := func(i int) float64 {
			if i == cols {
				return p.Clean.MaxX
			}
			return p.Clean.MinX + p.Clean.Width()*float64(i)/float64(cols)
		}
		yEdge := func(j int) float64 {
			if j == rows {
				return p.Clean.MaxY
			}
			return p.Clean.MinY + p.Clean.Height()*float64(j)/float64(rows)
		}

		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				cells = append(cells, Cell{
					PanelLabel: p.Label,
					SubRow:     j + 1,
					SubCol:     i,
					GlobalRow:  p.Row*rows + j,
					GlobalCol:  p.Column*cols + i,
					CleanBox: Box{
						MinX: xEdge(i),
						MaxX: xEdge(i + 1),
						MinY: yEdge(j),
						MaxY: yEdge(j + 1),
					},
				})
			}
		}
	}

	return cells, nil
}
