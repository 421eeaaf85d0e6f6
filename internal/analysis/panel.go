package analysis

import "fmt"

// Box представляет физический ограничивающий прямоугольник
type Box struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Width возвращает ширину прямоугольника
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height возвращает высоту прямоугольника
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Contains проверяет, лежит ли точка внутри закрытого прямоугольника
func (b Box) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Overlaps проверяет пересечение внутренних областей двух прямоугольников
func (b Box) Overlaps(other Box) bool {
	return b.MinX < other.MaxX && other.MinX < b.MaxX &&
		b.MinY < other.MaxY && other.MinY < b.MaxY
}

// Panel представляет одну физическую панель в сетке производства
type Panel struct {
	Label  string `json:"label"`  // Уникальная метка, например "A1"
	Column int    `json:"column"` // Индекс колонки в раскладке (с нуля)
	Row    int    `json:"row"`    // Индекс строки в раскладке (с нуля)
	Box    Box    `json:"box"`    // Физические границы

	// Clean заполняется трансформацией координат, оригинальный Box не изменяется
	Clean Box `json:"clean_box"`
}

// Defect представляет точечный дефект. После трансформации хранит
// обе системы координат: физическую и очищенную от зазоров.
type Defect struct {
	OrigX  float64 `json:"orig_x"`
	OrigY  float64 `json:"orig_y"`
	CleanX float64 `json:"clean_x"`
	CleanY float64 `json:"clean_y"`
}

// NewDefect создает дефект в физических координатах
func NewDefect(x, y float64) Defect {
	return Defect{OrigX: x, OrigY: y, CleanX: x, CleanY: y}
}

// PanelLabel возвращает стандартную метку панели по позиции в раскладке:
// буква колонки (A, B, ...) плюс номер строки с единицы, например "H5"
func PanelLabel(column, row int) string {
	return fmt.Sprintf("%c%d", 'A'+column, row+1)
}
