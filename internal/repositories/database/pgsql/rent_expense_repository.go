package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andridns/expense-tracker-backend/internal/apperrors"
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	portsrepo "github.com/andridns/expense-tracker-backend/internal/core/ports/repositories"
	"github.com/andridns/expense-tracker-backend/internal/models"
	"github.com/andridns/expense-tracker-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const rentExpenseColumns = `rent_expense_id, period, currency,
sinking_fund_idr, service_charge_idr, service_charge_ppn_idr,
electricity_idr, electricity_usage_idr, electricity_ppn_idr, electricity_area_bersama_idr, electricity_pju_idr, electricity_kwh, electricity_tariff_idr,
water_idr, water_potable_idr, water_non_potable_idr, water_air_limbah_idr, water_ppn_idr, water_pemeliharaan_idr, water_area_bersama_idr, water_m3, water_tariff_idr,
fitout_idr, total_idr, source,
created_at, created_by, last_updated_at, last_updated_by`

type PgxRentExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxRentExpenseRepository(db *pgxpool.Pool) portsrepo.RentExpenseRepositoryFacade {
	return &PgxRentExpenseRepository{db: db}
}

var _ portsrepo.RentExpenseRepositoryFacade = (*PgxRentExpenseRepository)(nil)

func (r *PgxRentExpenseRepository) UpsertRentExpense(ctx context.Context, rentExpense domain.RentExpense) error {
	m := mapping.ToModelRentExpense(rentExpense)
	query := `
        INSERT INTO rent_expenses (` + rentExpenseColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
        ON CONFLICT (period) DO UPDATE SET
            currency = EXCLUDED.currency,
            sinking_fund_idr = EXCLUDED.sinking_fund_idr,
            service_charge_idr = EXCLUDED.service_charge_idr,
            service_charge_ppn_idr = EXCLUDED.service_charge_ppn_idr,
            electricity_idr = EXCLUDED.electricity_idr,
            electricity_usage_idr = EXCLUDED.electricity_usage_idr,
            electricity_ppn_idr = EXCLUDED.electricity_ppn_idr,
            electricity_area_bersama_idr = EXCLUDED.electricity_area_bersama_idr,
            electricity_pju_idr = EXCLUDED.electricity_pju_idr,
            electricity_kwh = EXCLUDED.electricity_kwh,
            electricity_tariff_idr = EXCLUDED.electricity_tariff_idr,
            water_idr = EXCLUDED.water_idr,
            water_potable_idr = EXCLUDED.water_potable_idr,
            water_non_potable_idr = EXCLUDED.water_non_potable_idr,
            water_air_limbah_idr = EXCLUDED.water_air_limbah_idr,
            water_ppn_idr = EXCLUDED.water_ppn_idr,
            water_pemeliharaan_idr = EXCLUDED.water_pemeliharaan_idr,
            water_area_bersama_idr = EXCLUDED.water_area_bersama_idr,
            water_m3 = EXCLUDED.water_m3,
            water_tariff_idr = EXCLUDED.water_tariff_idr,
            fitout_idr = EXCLUDED.fitout_idr,
            total_idr = EXCLUDED.total_idr,
            source = EXCLUDED.source,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		m.RentExpenseID, m.Period, m.Currency,
		m.SinkingFund, m.ServiceCharge, m.ServiceChargePPN,
		m.Electricity, m.ElectricityUsage, m.ElectricityPPN, m.ElectricityAreaBersama, m.ElectricityPJU, m.ElectricityKwh, m.ElectricityTariff,
		m.Water, m.WaterPotable, m.WaterNonPotable, m.WaterAirLimbah, m.WaterPPN, m.WaterPemeliharaan, m.WaterAreaBersama, m.WaterM3, m.WaterTariff,
		m.Fitout, m.Total, m.Source,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rent expense for period %s: %w", rentExpense.Period, err)
	}
	return nil
}

func (r *PgxRentExpenseRepository) FindRentExpenseByPeriod(ctx context.Context, periodKey string) (*domain.RentExpense, error) {
	query := `SELECT ` + rentExpenseColumns + ` FROM rent_expenses WHERE period = $1;`
	m, err := scanRentExpense(r.db.QueryRow(ctx, query, periodKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rent expense for period %s: %w", periodKey, err)
	}

	domainRentExpense := mapping.ToDomainRentExpense(*m)
	return &domainRentExpense, nil
}

func (r *PgxRentExpenseRepository) FindRentExpenses(ctx context.Context, periodKey *string) ([]domain.RentExpense, error) {
	query := `SELECT ` + rentExpenseColumns + ` FROM rent_expenses`
	args := []any{}
	if periodKey != nil {
		query += ` WHERE period = $1`
		args = append(args, *periodKey)
	}
	query += ` ORDER BY period DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rent expenses: %w", err)
	}
	defer rows.Close()

	modelRentExpenses := []models.RentExpense{}
	for rows.Next() {
		m, err := scanRentExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rent expense row: %w", err)
		}
		modelRentExpenses = append(modelRentExpenses, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating rent expense rows: %w", rows.Err())
	}

	return mapping.ToDomainRentExpenseSlice(modelRentExpenses), nil
}

func scanRentExpense(row pgx.Row) (*models.RentExpense, error) {
	var m models.RentExpense
	err := row.Scan(
		&m.RentExpenseID, &m.Period, &m.Currency,
		&m.SinkingFund, &m.ServiceCharge, &m.ServiceChargePPN,
		&m.Electricity, &m.ElectricityUsage, &m.ElectricityPPN, &m.ElectricityAreaBersama, &m.ElectricityPJU, &m.ElectricityKwh, &m.ElectricityTariff,
		&m.Water, &m.WaterPotable, &m.WaterNonPotable, &m.WaterAirLimbah, &m.WaterPPN, &m.WaterPemeliharaan, &m.WaterAreaBersama, &m.WaterM3, &m.WaterTariff,
		&m.Fitout, &m.Total, &m.Source,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
