package config

import (
	"os"
	"strconv"
)

// Config структура конфигурации приложения
type Config struct {
	Server struct {
		Port        string
		Host        string
		Environment string
	}
	Analysis struct {
		SubGridRows    int     // Разбиение панели по вертикали
		SubGridCols    int     // Разбиение панели по горизонтали
		NoiseThreshold float64 // Порог активности ячейки
		Connectivity   int     // Связность регионов: 4 или 8
		NoiseQuantile  float64 // Квантиль глобального оценщика шума
	}
	SMTP struct {
		Server   string
		Port     int
		User     string
		Password string
		Sender   string
	}
	Logging struct {
		Level string
	}
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() *Config {
	cfg := &Config{}

	// Конфигурация сервера
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.Server.Environment = getEnv("ENVIRONMENT", "development")

	// Параметры анализа по умолчанию (перекрываются в запросе)
	cfg.Analysis.SubGridRows = getEnvInt("ANALYSIS_SUBGRID_ROWS", 3)
	cfg.Analysis.SubGridCols = getEnvInt("ANALYSIS_SUBGRID_COLS", 3)
	cfg.Analysis.NoiseThreshold = getEnvFloat("ANALYSIS_NOISE_THRESHOLD", 0)
	cfg.Analysis.Connectivity = getEnvInt("ANALYSIS_CONNECTIVITY", 8)
	cfg.Analysis.NoiseQuantile = getEnvFloat("ANALYSIS_NOISE_QUANTILE", 0.5)

	// Конфигурация SMTP для уведомлений
	cfg.SMTP.Server = getEnv("SMTP_SERVER", "smtp.gmail.com")
	cfg.SMTP.Port = getEnvInt("SMTP_PORT", 587)
	cfg.SMTP.User = getEnv("SMTP_USER", "")
	cfg.SMTP.Password = getEnv("SMTP_PASSWORD", "")
	cfg.SMTP.Sender = getEnv("SMTP_SENDER", cfg.SMTP.User)

	// Конфигурация логирования
	cfg.Logging.Level = getEnv("LOG_LEVEL", "info")

	return cfg
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает int значение переменной окружения или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает float значение переменной окружения или возвращает значение по умолчанию
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
