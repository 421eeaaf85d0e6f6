package analysis

// CountDefects подсчитывает очищенные дефекты по ячейкам. Границы
// полуоткрытые [min, max), поэтому точка на общем внутреннем ребре
// считается ровно один раз. Ячейки на внешнем краю сетки закрывают
// свою максимальную сторону, иначе дефекты на краю массива панелей
// терялись бы после фильтра с закрытыми границами.
func CountDefects(cells []Cell, defects []Defect) {
	maxRow, maxCol := 0, 0
	for i := range cells {
		if cells[i].GlobalRow > maxRow {
			maxRow = cells[i].GlobalRow
		}
		if cells[i].GlobalCol > maxCol {
			maxCol = cells[i].GlobalCol
		}
	}

	for i := range cells {
		c := &cells[i]
		closedX := c.GlobalCol == maxCol
		closedY := c.GlobalRow == maxRow

		count := 0
		for _, d := range defects {
			inX := d.CleanX >= c.CleanBox.MinX &&
				(d.CleanX < c.CleanBox.MaxX || (closedX && d.CleanX <= c.CleanBox.MaxX))
			inY := d.CleanY >= c.CleanBox.MinY &&
				(d.CleanY < c.CleanBox.MaxY || (closedY && d.CleanY <= c.CleanBox.MaxY))
			if inX && inY {
				count++
			}
		}
		c.RawCount = count
	}
}
