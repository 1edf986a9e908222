package repository

import (
	"errors"

	"selectz/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditsRepository struct {
	db *gorm.DB
}

func NewCreditsRepository(db *gorm.DB) *CreditsRepository {
	return &CreditsRepository{db: db}
}

func (r *CreditsRepository) GetByEmployer(employerID string) (*models.CreditsBalance, error) {
	var b models.CreditsBalance
	err := r.db.Where("employer_id = ?", employerID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.CreditsBalance{EmployerID: employerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Add increments the employer's balance by amount, creating the row if absent.
// The increment happens in SQL, not read-modify-write, so concurrent
// settlements cannot lose an update. total_purchased accumulates as well.
func (r *CreditsRepository) Add(tx *gorm.DB, employerID string, amount int) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "employer_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":         gorm.Expr("balance + ?", amount),
			"total_purchased": gorm.Expr("total_purchased + ?", amount),
		}),
	}).Create(&models.CreditsBalance{
		EmployerID:     employerID,
		Balance:        amount,
		TotalPurchased: amount,
	}).Error
}
