// Package checkout records membership purchases: one immutable payment
// ledger row plus the membership upgrade on the member's profile.
package checkout

import (
	"context"
	"fmt"
	"time"

	"gymrat/database"
	"gymrat/database/query"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/models"
	"gymrat/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService drives the payment flow for the pricing page.
type CheckoutService interface {
	// Pay records a completed payment and activates the purchased plan on
	// the member's profile with a one-month expiry.
	Pay(ctx context.Context, userID, plan string, price float64) (*models.Payment, error)
	// ListPayments returns a member's ledger, newest first.
	ListPayments(ctx context.Context, userID string) ([]models.Payment, error)
}

// DefaultCheckoutService is the production implementation.
type DefaultCheckoutService struct {
	Store *database.Store
	Repo  recordsRepo.RecordRepository
}

// Pay records the payment first, then upgrades the membership. Updating a
// profile that does not exist fails with ExistenceError; the ledger row is
// already written at that point, same as the flow it reproduces.
func (s *DefaultCheckoutService) Pay(ctx context.Context, userID, plan string, price float64) (*models.Payment, error) {
	if userID == "" || plan == "" {
		return nil, fmt.Errorf("a member and a plan are required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	now := time.Now().UTC()
	payment := models.Payment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Amount:      price,
		Status:      models.PaymentCompleted,
		PaymentDate: now.Format(time.RFC3339),
	}
	rec, err := database.ToRecord(payment)
	if err != nil {
		return nil, err
	}
	if err := query.From(s.Store, database.CollectionPayments).Insert(ctx, []database.Record{rec}); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	expiry := now.AddDate(0, 1, 0).Format("2006-01-02")
	fields := database.Record{
		"membership_plan":   plan,
		"membership_status": "active",
		"membership_expiry": expiry,
	}
	if err := s.Repo.Update(ctx, database.CollectionUsers, userID, fields); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("membership activated",
		zap.String("userID", userID), zap.String("plan", plan), zap.Float64("amount", price))
	return &payment, nil
}

// ListPayments returns the member's payment ledger, newest first.
func (s *DefaultCheckoutService) ListPayments(ctx context.Context, userID string) ([]models.Payment, error) {
	res, err := query.From(s.Store, database.CollectionPayments).
		Eq("user_id", userID).
		Order("payment_date", false).
		Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	out := make([]models.Payment, 0, len(res.Data))
	for _, rec := range res.Data {
		var p models.Payment
		if err := database.DecodeRecord(rec, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
