package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grid-analyzer-go/internal/analysis"
	"grid-analyzer-go/internal/database"
	"grid-analyzer-go/internal/service"
	"grid-analyzer-go/pkg/models"
)

// AnalysisHandler обработчик для анализа плотности дефектов
type AnalysisHandler struct {
	analyzerService *service.AnalyzerService
	runService      *service.RunService
	logger          *logrus.Logger
}

// NewAnalysisHandler создает новый обработчик
func NewAnalysisHandler(analyzerService *service.AnalyzerService, runService *service.RunService, logger *logrus.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzerService: analyzerService,
		runService:      runService,
		logger:          logger,
	}
}

// RegisterRoutes регистрирует маршруты обработчика
func (h *AnalysisHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/analysis", h.Analyze)
		api.GET("/analysis", h.ListRuns)
		api.GET("/analysis/:id", h.GetRun)
		api.DELETE("/analysis/:id", h.DeleteRun)
	}

	router.GET("/health", h.Health)
}

// Analyze обрабатывает запрос на анализ плотности дефектов
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	h.logger.Info("Получен запрос на анализ плотности дефектов")

	var request models.AnalyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.logger.Errorf("Ошибка парсинга запроса: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Некорректное тело запроса",
		})
		return
	}

	if len(request.Panels) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Раскладка панелей обязательна",
		})
		return
	}

	response, err := h.analyzerService.Analyze(request)
	if err != nil {
		var layoutErr *analysis.LayoutError
		var configErr *analysis.ConfigurationError
		if errors.As(err, &layoutErr) || errors.As(err, &configErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}

		h.logger.Errorf("Ошибка выполнения анализа: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Ошибка выполнения анализа",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRun возвращает сохраненный запуск анализа по ID
func (h *AnalysisHandler) GetRun(c *gin.Context) {
	runID := c.Param("id")

	response, err := h.runService.GetRunByID(runID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Запуск анализа не найден",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListRuns возвращает список запусков анализа с пагинацией
func (h *AnalysisHandler) ListRuns(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 || size > 100 {
		size = 20
	}

	runs, total, err := h.runService.ListRuns(page, size)
	if err != nil {
		h.logger.Errorf("Ошибка получения списка запусков: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Ошибка получения списка запусков",
		})
		return
	}

	c.JSON(http.StatusOK, service.ListRunsResponse{
		Runs:  runs,
		Total: total,
		Page:  page,
		Size:  size,
	})
}

// DeleteRun удаляет запуск анализа по ID
func (h *AnalysisHandler) DeleteRun(c *gin.Context) {
	runID := c.Param("id")

	if err := h.runService.DeleteRun(runID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Запуск анализа не найден",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Запуск анализа удален",
	})
}

// Health проверяет состояние сервиса и базы данных
func (h *AnalysisHandler) Health(c *gin.Context) {
	dbHealthy := database.HealthCheck() == nil

	status := "healthy"
	code := http.StatusOK
	if !dbHealthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, models.HealthResponse{
		Status:   status,
		Database: dbHealthy,
		Version:  "1.0.0",
	})
}
