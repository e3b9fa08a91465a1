package models

import "github.com/shopspring/decimal"

// RentExpense represents one monthly apartment bill with its full IDR
// component breakdown. Period is "YYYY-MM" and unique.
type RentExpense struct {
	RentExpenseID string `db:"rent_expense_id"`
	Period        string `db:"period"`
	Currency      string `db:"currency"`

	SinkingFund      decimal.Decimal `db:"sinking_fund_idr"`
	ServiceCharge    decimal.Decimal `db:"service_charge_idr"`
	ServiceChargePPN decimal.Decimal `db:"service_charge_ppn_idr"`

	Electricity            decimal.Decimal `db:"electricity_idr"`
	ElectricityUsage       decimal.Decimal `db:"electricity_usage_idr"`
	ElectricityPPN         decimal.Decimal `db:"electricity_ppn_idr"`
	ElectricityAreaBersama decimal.Decimal `db:"electricity_area_bersama_idr"`
	ElectricityPJU         decimal.Decimal `db:"electricity_pju_idr"`
	ElectricityKwh         decimal.Decimal `db:"electricity_kwh"`
	ElectricityTariff      decimal.Decimal `db:"electricity_tariff_idr"`

	Water             decimal.Decimal `db:"water_idr"`
	WaterPotable      decimal.Decimal `db:"water_potable_idr"`
	WaterNonPotable   decimal.Decimal `db:"water_non_potable_idr"`
	WaterAirLimbah    decimal.Decimal `db:"water_air_limbah_idr"`
	WaterPPN          decimal.Decimal `db:"water_ppn_idr"`
	WaterPemeliharaan decimal.Decimal `db:"water_pemeliharaan_idr"`
	WaterAreaBersama  decimal.Decimal `db:"water_area_bersama_idr"`
	WaterM3           decimal.Decimal `db:"water_m3"`
	WaterTariff       decimal.Decimal `db:"water_tariff_idr"`

	Fitout decimal.Decimal `db:"fitout_idr"`
	Total  decimal.Decimal `db:"total_idr"`

	Source *string `db:"source"`
	AuditFields
}
