package analysis

import "fmt"

// LayoutError означает некорректную раскладку панелей: пересечение
// ограничивающих прямоугольников или дыру в прямоугольной сетке.
// Анализ прерывается до каких-либо трансформаций координат.
type LayoutError struct {
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid panel layout: %s", e.Reason)
}

// ConfigurationError означает несовместимые параметры анализа,
// например разбиение, при котором границы ячеек не точные.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid analysis configuration: %s", e.Reason)
}
