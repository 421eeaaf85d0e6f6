package repository

import (
	"fmt"

	"gorm.io/gorm"

	"grid-analyzer-go/internal/model"
)

// RecipientRepository интерфейс для работы с получателями уведомлений
type RecipientRepository interface {
	List() ([]*model.Recipient, error)
	Create(recipient *model.Recipient) error
	Delete(id uint) error
}

// recipientRepository реализация RecipientRepository
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository создает новый instance RecipientRepository
func NewRecipientRepository(db *gorm.DB) RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// List получает всех получателей уведомлений
func (r *recipientRepository) List() ([]*model.Recipient, error) {
	var recipients []*model.Recipient
	if err := r.db.Order("id").Find(&recipients).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	return recipients, nil
}

// Create добавляет нового получателя
func (r *recipientRepository) Create(recipient *model.Recipient) error {
	if err := r.db.Create(recipient).Error; err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}
	return nil
}

// Delete удаляет получателя по ID
func (r *recipientRepository) Delete(id uint) error {
	result := r.db.Where("id = ?", id).Delete(&model.Recipient{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("recipient with id %d not found", id)
	}
	return nil
}
