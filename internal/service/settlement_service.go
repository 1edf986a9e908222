package service

import (
	"errors"
	"fmt"

	"selectz/internal/models"
	"selectz/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrUnknownOrder    = errors.New("no payment intent for order")
	ErrInvalidStatus   = errors.New("unsupported webhook payment status")
	ErrMissingSideData = errors.New("intent missing side-effect data")
)

// SettlementResult reports what a verified webhook delivery did.
type SettlementResult struct {
	Intent   *models.PaymentIntent
	Replayed bool // terminal intent seen again; nothing was applied
}

// SettlementService applies a verified webhook to a payment intent. The status
// transition, the purchase side effect and the coupon usage record commit in
// one transaction, so a crash or concurrent delivery cannot half-apply a
// settlement: either the intent stays pending and the processor retries, or
// everything landed exactly once.
type SettlementService struct {
	db          *gorm.DB
	intentRepo  *repository.PaymentIntentRepository
	couponRepo  *repository.CouponRepository
	creditsRepo *repository.CreditsRepository
	jobRepo     *repository.JobRepository
	logger      zerolog.Logger
}

func NewSettlementService(
	db *gorm.DB,
	intentRepo *repository.PaymentIntentRepository,
	couponRepo *repository.CouponRepository,
	creditsRepo *repository.CreditsRepository,
	jobRepo *repository.JobRepository,
	logger zerolog.Logger,
) *SettlementService {
	return &SettlementService{
		db:          db,
		intentRepo:  intentRepo,
		couponRepo:  couponRepo,
		creditsRepo: creditsRepo,
		jobRepo:     jobRepo,
		logger:      logger,
	}
}

// Settle transitions the intent matched by orderID to the webhook's status and,
// on capture, applies the purchase's business effect. Replayed deliveries for
// an already-settled intent return Replayed=true with no mutation.
func (s *SettlementService) Settle(orderID, paymentID, status string) (*SettlementResult, error) {
	if status != models.IntentStatusCaptured && status != models.IntentStatusFailed {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	result := &SettlementResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		intent, err := s.intentRepo.Transition(tx, orderID, status, paymentID)
		if errors.Is(err, repository.ErrIntentNotFound) {
			return ErrUnknownOrder
		}
		if errors.Is(err, repository.ErrAlreadySettled) {
			result.Intent = intent
			result.Replayed = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("transition intent: %w", err)
		}
		result.Intent = intent

		if status != models.IntentStatusCaptured {
			return nil
		}
		if err := s.applySideEffect(tx, intent); err != nil {
			return err
		}
		if intent.CouponID != nil {
			usage := &models.CouponUsage{
				CouponID:       *intent.CouponID,
				UserID:         intent.UserID,
				OrderID:        intent.OrderID,
				AmountBefore:   intent.Amount + intent.DiscountAmount,
				DiscountAmount: intent.DiscountAmount,
				AmountAfter:    intent.Amount,
			}
			if err := s.couponRepo.RecordUsage(tx, usage); err != nil {
				return fmt.Errorf("record coupon usage: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	ev := s.logger.Info().Str("order_id", orderID).Str("status", status)
	if result.Replayed {
		ev.Bool("replayed", true)
	}
	ev.Msg("webhook settled")
	return result, nil
}

func (s *SettlementService) applySideEffect(tx *gorm.DB, intent *models.PaymentIntent) error {
	switch intent.Purpose {
	case models.PurposeCredits:
		if intent.CreditsAmount == nil {
			return fmt.Errorf("%w: credits purchase without credits_amount", ErrMissingSideData)
		}
		if err := s.creditsRepo.Add(tx, intent.UserID, *intent.CreditsAmount); err != nil {
			return fmt.Errorf("add credits: %w", err)
		}
	case models.PurposeJobPosting:
		if intent.JobID == nil {
			return fmt.Errorf("%w: job_posting purchase without job_id", ErrMissingSideData)
		}
		if err := s.jobRepo.Activate(tx, *intent.JobID); err != nil {
			return fmt.Errorf("activate job: %w", err)
		}
	default:
		return fmt.Errorf("%w: unknown purpose %q", ErrMissingSideData, intent.Purpose)
	}
	return nil
}
