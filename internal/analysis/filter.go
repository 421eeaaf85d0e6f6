package analysis

// FilterOutliers оставляет только дефекты, попадающие в закрытый
// ограничивающий прямоугольник хотя бы одной панели. Точки вне всех
// панелей - ожидаемый шум источника данных, отбрасываются молча.
func FilterOutliers(defects []Defect, panels []Panel) []Defect {
	valid := make([]Defect, 0, len(defects))
	for _, d := range defects {
		for _, p := range panels {
			if p.Box.Contains(d.OrigX, d.OrigY) {
				valid = append(valid, d)
				break
			}
		}
	}
	return valid
}
