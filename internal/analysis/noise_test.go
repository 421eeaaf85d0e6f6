package analysis

import "testing"

// fixedEstimator возвращает одну и ту же оценку для всех ячеек
type fixedEstimator struct {
	value float64
}

func (e fixedEstimator) Estimate(cells []Cell) []float64 {
	estimates := make([]float64, len(cells))
	for i := range estimates {
		estimates[i] = e.value
	}
	return estimates
}

func TestRemoveNoiseNonNegative(t *testing.T) {
	cells := []Cell{
		{RawCount: 10},
		{RawCount: 2},
		{RawCount: 0},
	}

	RemoveNoise(cells, fixedEstimator{value: 3})

	expected := []float64{7, 0, 0}
	for i, c := range cells {
		if c.CleanedCount != expected[i] {
			t.Errorf("ячейка %d: cleaned %v, ожидалось %v", i, c.CleanedCount, expected[i])
		}
		if c.CleanedCount < 0 {
			t.Errorf("ячейка %d: отрицательный cleaned %v", i, c.CleanedCount)
		}
		if c.CleanedCount > float64(c.RawCount) {
			t.Errorf("ячейка %d: cleaned %v превышает raw %d", i, c.CleanedCount, c.RawCount)
		}
	}
}

func TestRemoveNoiseClampsNegativeEstimate(t *testing.T) {
	cells := []Cell{{RawCount: 5}}

	// Некорректный оценщик: отрицательная оценка обрезается,
	// счетчик не увеличивается
	RemoveNoise(cells, fixedEstimator{value: -2})

	if cells[0].NoiseEstimate != 0 {
		t.Errorf("оценка шума %v, ожидался 0", cells[0].NoiseEstimate)
	}
	if cells[0].CleanedCount != 5 {
		t.Errorf("cleaned %v, ожидалось 5", cells[0].CleanedCount)
	}
}

func TestPercentileEstimatorMedian(t *testing.T) {
	cells := []Cell{
		{RawCount: 1},
		{RawCount: 2},
		{RawCount: 3},
		{RawCount: 4},
		{RawCount: 100},
	}

	estimates := PercentileEstimator{Quantile: 0.5}.Estimate(cells)

	if len(estimates) != len(cells) {
		t.Fatalf("оценок %d, ячеек %d", len(estimates), len(cells))
	}
	// Медиана робастна к выбросу в одной ячейке
	for i, e := range estimates {
		if e != estimates[0] {
			t.Fatalf("оценка не глобальная: %v != %v", e, estimates[0])
		}
		if e < 1 || e > 4 {
			t.Errorf("оценка %d вне разумного диапазона: %v", i, e)
		}
	}
}

func TestPercentileEstimatorEmpty(t *testing.T) {
	estimates := PercentileEstimator{}.Estimate(nil)
	if len(estimates) != 0 {
		t.Fatalf("пустой вход дал %d оценок", len(estimates))
	}
}

func TestDensityEstimatorArea(t *testing.T) {
	cells := []Cell{
		{CleanBox: Box{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}},
		{CleanBox: Box{MinX: 0, MaxX: 20, MinY: 0, MaxY: 10}},
	}

	// Плотность 0.5 дефекта на 100 единиц площади, как в исходной модели
	estimates := DensityEstimator{Density: 0.5 / 100}.Estimate(cells)

	if estimates[0] != 0.5 {
		t.Errorf("оценка %v, ожидалось 0.5", estimates[0])
	}
	if estimates[1] != 1.0 {
		t.Errorf("оценка %v, ожидалось 1.0", estimates[1])
	}
}
