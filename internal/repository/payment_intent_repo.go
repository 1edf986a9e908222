package repository

import (
	"errors"
	"time"

	"selectz/internal/models"

	"gorm.io/gorm"
)

var (
	ErrIntentNotFound = errors.New("payment intent not found")
	ErrAlreadySettled = errors.New("payment intent already settled")
)

type PaymentIntentRepository struct {
	db *gorm.DB
}

func NewPaymentIntentRepository(db *gorm.DB) *PaymentIntentRepository {
	return &PaymentIntentRepository{db: db}
}

func (r *PaymentIntentRepository) Create(p *models.PaymentIntent) error {
	return r.db.Create(p).Error
}

func (r *PaymentIntentRepository) GetByOrderID(orderID string) (*models.PaymentIntent, error) {
	var p models.PaymentIntent
	err := r.db.Where("order_id = ?", orderID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIntentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentIntentRepository) ListByUser(userID string, limit int) ([]models.PaymentIntent, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var intents []models.PaymentIntent
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&intents).Error
	return intents, err
}

// Transition flips the intent matched by order id from pending to the given
// terminal status, recording the processor payment id. It must run inside the
// settlement transaction (tx) so the status change and side effects commit
// together. Returns ErrAlreadySettled when a concurrent or replayed delivery
// got there first, ErrIntentNotFound for an unknown order.
func (r *PaymentIntentRepository) Transition(tx *gorm.DB, orderID, status, paymentID string) (*models.PaymentIntent, error) {
	now := time.Now()
	res := tx.Model(&models.PaymentIntent{}).
		Where("order_id = ? AND status = ?", orderID, models.IntentStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"payment_id": paymentID,
			"settled_at": &now,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var existing models.PaymentIntent
		err := tx.Where("order_id = ?", orderID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIntentNotFound
		}
		if err != nil {
			return nil, err
		}
		return &existing, ErrAlreadySettled
	}
	var p models.PaymentIntent
	if err := tx.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
