package repository

import (
	"errors"

	"selectz/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) GetByID(id string) (*models.Job, error) {
	var j models.Job
	err := r.db.Where("id = ?", id).First(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Activate marks a job live and paid. Runs inside the settlement transaction.
func (r *JobRepository) Activate(tx *gorm.DB, jobID string) error {
	res := tx.Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":         models.JobStatusActive,
			"payment_status": models.JobPaymentPaid,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
