package analysis

import (
	"errors"
	"testing"
)

// twoByOne возвращает корректную раскладку 2 колонки x 1 строка с зазором 50
func twoByOne() []Panel {
	return []Panel{
		{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
		{Label: "B1", Column: 1, Row: 0, Box: Box{MinX: 150, MaxX: 250, MinY: 0, MaxY: 100}},
	}
}

func TestValidateLayoutAccepts(t *testing.T) {
	if err := ValidateLayout(twoByOne()); err != nil {
		t.Fatalf("корректная раскладка отклонена: %v", err)
	}
}

func TestValidateLayoutRejects(t *testing.T) {
	tests := []struct {
		name   string
		panels []Panel
	}{
		{
			name:   "пустой набор",
			panels: nil,
		},
		{
			name: "дубликат метки",
			panels: []Panel{
				{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
				{Label: "A1", Column: 1, Row: 0, Box: Box{MinX: 150, MaxX: 250, MinY: 0, MaxY: 100}},
			},
		},
		{
			name: "дубликат позиции",
			panels: []Panel{
				{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
				{Label: "B1", Column: 0, Row: 0, Box: Box{MinX: 150, MaxX: 250, MinY: 0, MaxY: 100}},
			},
		},
		{
			name: "дыра в раскладке",
			panels: []Panel{
				{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
				{Label: "C1", Column: 2, Row: 0, Box: Box{MinX: 300, MaxX: 400, MinY: 0, MaxY: 100}},
			},
		},
		{
			name: "пересечение панелей",
			panels: []Panel{
				{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
				{Label: "B1", Column: 1, Row: 0, Box: Box{MinX: 90, MaxX: 190, MinY: 0, MaxY: 100}},
			},
		},
		{
			name: "вырожденный прямоугольник",
			panels: []Panel{
				{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 100, MaxX: 100, MinY: 0, MaxY: 100}},
			},
		},
		{
			name: "рассогласованная колонка",
			panels: []Panel{
				{Label: "A1", Column: 0, Row: 0, Box: Box{MinX: 0, MaxX: 100, MinY: 0, MaxY: 100}},
				{Label: "A2", Column: 0, Row: 1, Box: Box{MinX: 10, MaxX: 110, MinY: 150, MaxY: 250}},
				{Label: "B1", Column: 1, Row: 0, Box: Box{MinX: 200, MaxX: 300, MinY: 0, MaxY: 100}},
				{Label: "B2", Column: 1, Row: 1, Box: Box{MinX: 200, MaxX: 300, MinY: 150, MaxY: 250}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLayout(tt.panels)
			if err == nil {
				t.Fatal("ожидалась ошибка раскладки")
			}
			var layoutErr *LayoutError
			if !errors.As(err, &layoutErr) {
				t.Fatalf("ожидался *LayoutError, получен %T: %v", err, err)
			}
		})
	}
}
