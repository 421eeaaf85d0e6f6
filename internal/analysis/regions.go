package analysis

import (
	"fmt"
	"math"
	"sort"
)

// Region представляет максимальный связный кластер активных ячеек.
// Идентификаторы плотные, с единицы, в порядке обнаружения при
// построчном обходе сетки - до итоговой сортировки отчета, поэтому
// идентичность региона не зависит от его места в отчете.
type Region struct {
	ID           int
	Cells        []*Cell // Члены в порядке глобального индекса
	TotalCleaned float64
	CellCount    int
	AvgDensity   float64 // Округлена до 2 знаков
}

// dsu - система непересекающихся множеств со сжатием путей,
// ровно на размер глобальной сетки
type dsu struct {
	parent []int
}

func newDSU(n int) *dsu {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &dsu{parent: parent}
}

func (d *dsu) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

func (d *dsu) union(a, b int) {
	ra, rb := d.find(a), d.find(b)
	if ra != rb {
		d.parent[rb] = ra
	}
}

// DetectRegions выполняет разметку связных компонент по глобальной
// сетке очищенных счетчиков. Ячейка активна при cleaned > threshold.
// Связность 8 (с диагоналями) или 4. Глобальные индексы непрерывны
// через стыки панелей, поэтому кластер поверх двух физически
// раздельных панелей соединяется без специальной обработки.
// Результат отсортирован по суммарному очищенному счетчику по
// убыванию, при равенстве - по меньшему ID.
func DetectRegions(cells []Cell, threshold float64, connectivity int) ([]Region, error) {
	if connectivity != 4 && connectivity != 8 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("connectivity %d is not supported, use 4 or 8", connectivity)}
	}
	if len(cells) == 0 {
		return []Region{}, nil
	}

	totalRows, totalCols := 0, 0
	for i := range cells {
		if cells[i].GlobalRow+1 > totalRows {
			totalRows = cells[i].GlobalRow + 1
		}
		if cells[i].GlobalCol+1 > totalCols {
			totalCols = cells[i].GlobalCol + 1
		}
	}

	// Плоская сетка: позиция -> индекс ячейки, -1 для пустых позиций
	grid := make([]int, totalRows*totalCols)
	for i := range grid {
		grid[i] = -1
	}
	for i := range cells {
		grid[cells[i].GlobalRow*totalCols+cells[i].GlobalCol] = i
	}

	active := func(r, c int) (int, bool) {
		if r < 0 || r >= totalRows || c < 0 || c >= totalCols {
			return -1, false
		}
		idx := grid[r*totalCols+c]
		if idx < 0 || cells[idx].CleanedCount <= threshold {
			return -1, false
		}
		return idx, true
	}

	// Соседи, уже пройденные построчным обходом
	neighbors := [][2]int{{-1, 0}, {0, -1}}
	if connectivity == 8 {
		neighbors = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}}
	}

	uf := newDSU(totalRows * totalCols)
	for r := 0; r < totalRows; r++ {
		for c := 0; c < totalCols; c++ {
			if _, ok := active(r, c); !ok {
				continue
			}
			for _, n := range neighbors {
				if _, ok := active(r+n[0], c+n[1]); ok {
					uf.union(r*totalCols+c, (r+n[0])*totalCols+(c+n[1]))
				}
			}
		}
	}

	// Второй проход: плотные ID в порядке обнаружения корней
	regionByRoot := make(map[int]*Region)
	ordered := make([]*Region, 0)
	for r := 0; r < totalRows; r++ {
		for c := 0; c < totalCols; c++ {
			idx, ok := active(r, c)
			if !ok {
				if i := grid[r*totalCols+c]; i >= 0 {
					cells[i].RegionID = 0
				}
				continue
			}
			root := uf.find(r*totalCols + c)
			region, seen := regionByRoot[root]
			if !seen {
				region = &Region{ID: len(ordered) + 1}
				regionByRoot[root] = region
				ordered = append(ordered, region)
			}
			cell := &cells[idx]
			cell.RegionID = region.ID
			region.Cells = append(region.Cells, cell)
			region.TotalCleaned += cell.CleanedCount
			region.CellCount++
		}
	}

	result := make([]Region, 0, len(ordered))
	for _, region := range ordered {
		region.AvgDensity = math.Round(region.TotalCleaned/float64(region.CellCount)*100) / 100
		result = append(result, *region)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalCleaned != result[j].TotalCleaned {
			return result[i].TotalCleaned > result[j].TotalCleaned
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}
