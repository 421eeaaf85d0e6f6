package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// NoiseEstimator вычисляет оценку фонового шума для каждой ячейки.
// Статистический метод - настраиваемая политика; детектор регионов
// от выбора оценщика не зависит.
type NoiseEstimator interface {
	Estimate(cells []Cell) []float64
}

// PercentileEstimator оценивает шум одним глобальным уровнем:
// квантилем распределения сырых счетчиков всех ячеек.
// Quantile 0.5 дает медиану - робастную базовую линию.
type PercentileEstimator struct {
	Quantile float64
}

// Estimate возвращает одинаковую оценку для всех ячеек
func (e PercentileEstimator) Estimate(cells []Cell) []float64 {
	estimates := make([]float64, len(cells))
	if len(cells) == 0 {
		return estimates
	}

	counts := make([]float64, len(cells))
	for i := range cells {
		counts[i] = float64(cells[i].RawCount)
	}
	sort.Float64s(counts)

	q := e.Quantile
	if q <= 0 || q >= 1 {
		q = 0.5
	}
	level := stat.Quantile(q, stat.Empirical, counts, nil)
	for i := range estimates {
		estimates[i] = level
	}
	return estimates
}

// DensityEstimator оценивает шум как площадь ячейки, умноженную на
// ожидаемую плотность фоновых дефектов (штук на единицу площади).
type DensityEstimator struct {
	Density float64
}

// Estimate возвращает оценку пропорционально площади каждой ячейки
func (e DensityEstimator) Estimate(cells []Cell) []float64 {
	estimates := make([]float64, len(cells))
	for i := range cells {
		estimates[i] = cells[i].CleanBox.Width() * cells[i].CleanBox.Height() * e.Density
	}
	return estimates
}

// RemoveNoise записывает в ячейки оценку шума и очищенный счетчик.
// Отрицательная оценка обрезается до нуля; очищенный счетчик никогда
// не отрицателен и никогда не превышает сырой.
func RemoveNoise(cells []Cell, estimator NoiseEstimator) {
	estimates := estimator.Estimate(cells)
	for i := range cells {
		estimate := 0.0
		if i < len(estimates) && estimates[i] > 0 {
			estimate = estimates[i]
		}
		cleaned := float64(cells[i].RawCount) - estimate
		if cleaned < 0 {
			cleaned = 0
		}
		cells[i].NoiseEstimate = estimate
		cells[i].CleanedCount = cleaned
	}
}
