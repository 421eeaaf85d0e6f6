package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func main() {
	// Проверяем health endpoint
	fmt.Println("Проверяем health endpoint...")
	resp, err := http.Get("http://localhost:8080/health")
	if err != nil {
		fmt.Printf("Ошибка при обращении к health endpoint: %v\n", err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Ошибка чтения ответа: %v\n", err)
		return
	}

	fmt.Printf("Health check ответ (статус %d):\n%s\n\n", resp.StatusCode, string(body))

	// Отправляем тестовый набор данных на анализ
	if err := testAnalyze(); err != nil {
		fmt.Printf("Ошибка при тестировании анализа: %v\n", err)
	}
}

func testAnalyze() error {
	// Две панели с зазором 50 между колонками. Кластер дефектов
	// сидит по обе стороны стыка и должен дать один регион.
	request := map[string]interface{}{
		"name": "smoke test",
		"panels": []map[string]interface{}{
			{"label": "A1", "column": 0, "row": 0, "x_min": 0, "x_max": 100, "y_min": 0, "y_max": 100},
			{"label": "B1", "column": 1, "row": 0, "x_min": 150, "x_max": 250, "y_min": 0, "y_max": 100},
		},
		"defects": buildDefects(),
		"options": map[string]interface{}{
			"sub_grid_rows": 2,
			"sub_grid_cols": 2,
		},
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}

	fmt.Println("Отправляем набор данных на анализ...")
	resp, err := client.Post("http://localhost:8080/api/v1/analysis", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("ошибка запроса анализа: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	fmt.Printf("Ответ анализа (статус %d):\n%s\n", resp.StatusCode, string(body))
	return nil
}

// buildDefects собирает кластер у правого нижнего угла панели A1,
// кластер у левого нижнего угла панели B1 и несколько выбросов в зазоре
func buildDefects() []map[string]float64 {
	defects := make([]map[string]float64, 0, 68)

	for i := 0; i < 30; i++ {
		defects = append(defects, map[string]float64{"x": 75 + float64(i%5), "y": 10 + float64(i/5)})
	}
	for i := 0; i < 28; i++ {
		defects = append(defects, map[string]float64{"x": 160 + float64(i%4), "y": 10 + float64(i/4)})
	}

	// Выбросы в физическом зазоре, фильтр обязан их отбросить
	for i := 0; i < 10; i++ {
		defects = append(defects, map[string]float64{"x": 110 + float64(i*3), "y": 50})
	}

	return defects
}
