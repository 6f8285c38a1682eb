// Package admin backs the operator dashboard: fleet-wide metrics and
// member listings.
package admin

import (
	"context"
	"fmt"

	"gymrat/database"
	"gymrat/database/query"
	recordsRepo "gymrat/database/repository/records"
	"gymrat/models"
)

// Metrics are the headline numbers on the admin dashboard.
type Metrics struct {
	ActiveMembers  int     `json:"active_members"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	TrainersCount  int     `json:"trainers_count"`
	ProgramsCount  int     `json:"programs_count"`
}

// Member is a profile with its identity key attached, for listings.
type Member struct {
	ID string `json:"id"`
	models.User
}

// AdminService exposes elevated read-only operations.
type AdminService interface {
	GetMetrics(ctx context.Context) (*Metrics, error)
	GetAllMembers(ctx context.Context) ([]Member, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Store *database.Store
	Repo  recordsRepo.RecordRepository
}

// GetMetrics computes member count, total revenue and the trainer and
// class counts. Counts use the query emulator's exact-count mode.
func (s *DefaultAdminService) GetMetrics(ctx context.Context) (*Metrics, error) {
	users, err := s.Repo.ListAll(ctx, database.CollectionUsers, recordsRepo.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	payments, err := query.From(s.Store, database.CollectionPayments).Select("amount").Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	var revenue float64
	for _, rec := range payments.Data {
		if amount, ok := rec["amount"].(float64); ok {
			revenue += amount
		}
	}

	trainers, err := query.From(s.Store, database.CollectionTrainers).CountExact().Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count trainers: %w", err)
	}
	classes, err := query.From(s.Store, database.CollectionClasses).CountExact().Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count classes: %w", err)
	}

	return &Metrics{
		ActiveMembers:  len(users),
		MonthlyRevenue: revenue,
		TrainersCount:  trainers.Count,
		ProgramsCount:  classes.Count,
	}, nil
}

// GetAllMembers returns every stored profile with its id.
func (s *DefaultAdminService) GetAllMembers(ctx context.Context) ([]Member, error) {
	recs, err := s.Repo.ListAll(ctx, database.CollectionUsers, recordsRepo.ListOptions{
		OrderBy: "name",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	out := make([]Member, 0, len(recs))
	for _, rec := range recs {
		var m Member
		if err := database.DecodeRecord(rec, &m.User); err != nil {
			return nil, err
		}
		m.ID, _ = rec["id"].(string)
		out = append(out, m)
	}
	return out, nil
}
