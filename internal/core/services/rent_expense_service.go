package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	portssvc "github.com/andridns/expense-tracker-backend/internal/core/ports/services"
	"github.com/andridns/expense-tracker-backend/internal/dto"
	"github.com/andridns/expense-tracker-backend/internal/utils/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// rentCurrency is fixed: apartment bills are always denominated in IDR.
const rentCurrency = "IDR"

var rentBreakdownCategories = []domain.RentCategory{
	domain.RentSinkingFund,
	domain.RentServiceCharge,
	domain.RentElectricity,
	domain.RentWater,
	domain.RentFitout,
}

type rentExpenseService struct {
	BaseService
	rentRepo portsrepo.RentExpenseRepositoryFacade
}

var _ portssvc.RentExpenseSvcFacade = (*rentExpenseService)(nil)

// NewRentExpenseService creates a new rent expense service.
func NewRentExpenseService(rentRepo portsrepo.RentExpenseRepositoryFacade) portssvc.RentExpenseSvcFacade {
	return &rentExpenseService{rentRepo: rentRepo}
}

func (s *rentExpenseService) ListRentExpenses(ctx context.Context, periodKey *string) ([]domain.RentExpense, error) {
	if periodKey != nil {
		if err := validateRentPeriod(*periodKey); err != nil {
			return nil, err
		}
	}
	return s.rentRepo.FindRentExpenses(ctx, periodKey)
}

func (s *rentExpenseService) GetRentExpenseByPeriod(ctx context.Context, periodKey string) (*domain.RentExpense, error) {
	if err := validateRentPeriod(periodKey); err != nil {
		return nil, err
	}
	return s.rentRepo.FindRentExpenseByPeriod(ctx, periodKey)
}

func (s *rentExpenseService) UpsertRentExpense(ctx context.Context, periodKey string, req dto.UpsertRentExpenseRequest, userID string) (*domain.RentExpense, error) {
	if err := validateRentPeriod(periodKey); err != nil {
		return nil, err
	}

	now := time.Now()
	bill := domain.RentExpense{
		RentExpenseID: uuid.NewString(),
		Period:        periodKey,
		Currency:      rentCurrency,

		SinkingFund:      req.SinkingFund,
		ServiceCharge:    req.ServiceCharge,
		ServiceChargePPN: req.ServiceChargePPN,

		Electricity:            req.Electricity,
		ElectricityUsage:       req.ElectricityUsage,
		ElectricityPPN:         req.ElectricityPPN,
		ElectricityAreaBersama: req.ElectricityAreaBersama,
		ElectricityPJU:         req.ElectricityPJU,
		ElectricityKwh:         req.ElectricityKwh,
		ElectricityTariff:      req.ElectricityTariff,

		Water:             req.Water,
		WaterPotable:      req.WaterPotable,
		WaterNonPotable:   req.WaterNonPotable,
		WaterAirLimbah:    req.WaterAirLimbah,
		WaterPPN:          req.WaterPPN,
		WaterPemeliharaan: req.WaterPemeliharaan,
		WaterAreaBersama:  req.WaterAreaBersama,
		WaterM3:           req.WaterM3,
		WaterTariff:       req.WaterTariff,

		Fitout: req.Fitout,
		Total:  req.Total,

		Source: req.Source,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// A replaced bill keeps its identity and creation audit trail.
	if existing, err := s.rentRepo.FindRentExpenseByPeriod(ctx, periodKey); err == nil && existing != nil {
		bill.RentExpenseID = existing.RentExpenseID
		bill.CreatedAt = existing.CreatedAt
		bill.CreatedBy = existing.CreatedBy
	}

	if bill.Total.IsZero() {
		bill.Total = bill.SinkingFund.
			Add(bill.ServiceCharge).
			Add(bill.ServiceChargePPN).
			Add(bill.Electricity).
			Add(bill.Water).
			Add(bill.Fitout)
	}

	if err := s.rentRepo.UpsertRentExpense(ctx, bill); err != nil {
		s.LogError(ctx, err, "Failed to upsert rent expense", "period", periodKey)
		return nil, fmt.Errorf("failed to upsert rent expense: %w", err)
	}
	return &bill, nil
}

func (s *rentExpenseService) GetRentTrends(ctx context.Context, params dto.RentTrendsParams) ([]dto.RentTrendPoint, error) {
	granularity := period.Monthly
	if params.Granularity != "" {
		var err error
		if granularity, err = period.ParseGranularity(params.Granularity); err != nil {
			return nil, err
		}
	}

	bills, err := s.rentRepo.FindRentExpenses(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rent expenses for trends")
		return nil, fmt.Errorf("failed to load rent expenses: %w", err)
	}

	buckets := make(map[string]*dto.RentTrendPoint)
	for _, bill := range bills {
		month, err := time.Parse("2006-01", bill.Period)
		if err != nil {
			s.LogWarn(ctx, "Skipping rent expense with malformed period", "period", bill.Period)
			continue
		}
		key := period.Key(month, granularity)

		point, ok := buckets[key]
		if !ok {
			point = &dto.RentTrendPoint{Period: key}
			buckets[key] = point
		}
		point.Value = point.Value.Add(rentTrendValue(bill, params))
		point.Count++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]dto.RentTrendPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, *buckets[key])
	}
	return points, nil
}

func (s *rentExpenseService) GetRentBreakdown(ctx context.Context, periodKey *string) (*dto.RentBreakdownResponse, error) {
	var bill *domain.RentExpense
	if periodKey != nil {
		var err error
		if bill, err = s.GetRentExpenseByPeriod(ctx, *periodKey); err != nil {
			return nil, err
		}
	} else {
		bills, err := s.rentRepo.FindRentExpenses(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to load rent expenses: %w", err)
		}
		if len(bills) == 0 {
			return nil, apperrors.NewNotFoundError("no rent expenses recorded")
		}
		bill = &bills[0]
	}

	items := make([]dto.RentBreakdownItem, 0, len(rentBreakdownCategories))
	for _, category := range rentBreakdownCategories {
		items = append(items, dto.RentBreakdownItem{
			Category: string(category),
			Amount:   bill.ComponentAmount(category),
		})
	}

	return &dto.RentBreakdownResponse{
		Period: bill.Period,
		Total:  bill.Total,
		Items:  items,
	}, nil
}

// rentTrendValue picks what a bill contributes to its trend bucket.
func rentTrendValue(bill domain.RentExpense, params dto.RentTrendsParams) decimal.Decimal {
	switch params.UsageView {
	case dto.RentViewElectricityUsage:
		return bill.ElectricityKwh
	case dto.RentViewWaterUsage:
		return bill.WaterM3
	default:
		if params.Category != nil {
			return bill.ComponentAmount(*params.Category)
		}
		return bill.Total
	}
}

func validateRentPeriod(periodKey string) error {
	if _, err := time.Parse("2006-01", periodKey); err != nil {
		return apperrors.NewValidationError(fmt.Sprintf("invalid rent period %q, expected YYYY-MM", periodKey))
	}
	return nil
}
