package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"grid-analyzer-go/internal/model"
	"grid-analyzer-go/internal/repository"
)

// RecipientHandler обработчик для получателей уведомлений
type RecipientHandler struct {
	recipientRepo repository.RecipientRepository
	logger        *logrus.Logger
}

// NewRecipientHandler создает новый обработчик получателей
func NewRecipientHandler(recipientRepo repository.RecipientRepository, logger *logrus.Logger) *RecipientHandler {
	return &RecipientHandler{
		recipientRepo: recipientRepo,
		logger:        logger,
	}
}

// RegisterRoutes регистрирует маршруты обработчика
func (h *RecipientHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/recipients", h.List)
		api.POST("/recipients", h.Create)
		api.DELETE("/recipients/:id", h.Delete)
	}
}

// List возвращает всех получателей уведомлений
func (h *RecipientHandler) List(c *gin.Context) {
	recipients, err := h.recipientRepo.List()
	if err != nil {
		h.logger.Errorf("Ошибка получения получателей: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Ошибка получения получателей",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipients": recipients,
		"total":      len(recipients),
	})
}

// Create добавляет нового получателя уведомлений
func (h *RecipientHandler) Create(c *gin.Context) {
	var recipient model.Recipient
	if err := c.ShouldBindJSON(&recipient); err != nil || recipient.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Поле email обязательно",
		})
		return
	}

	if err := h.recipientRepo.Create(&recipient); err != nil {
		h.logger.Errorf("Ошибка добавления получателя: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Ошибка добавления получателя",
		})
		return
	}

	c.JSON(http.StatusCreated, recipient)
}

// Delete удаляет получателя по ID
func (h *RecipientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Некорректный ID получателя",
		})
		return
	}

	if err := h.recipientRepo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Получатель не найден",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Получатель удален",
	})
}
