package dto

import (
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertRentExpenseRequest is the payload for recording one monthly bill.
// All monetary components are IDR.
type UpsertRentExpenseRequest struct {
	SinkingFund      decimal.Decimal `json:"sinkingFund"`
	ServiceCharge    decimal.Decimal `json:"serviceCharge"`
	ServiceChargePPN decimal.Decimal `json:"serviceChargePPN"`

	Electricity            decimal.Decimal `json:"electricity"`
	ElectricityUsage       decimal.Decimal `json:"electricityUsage"`
	ElectricityPPN         decimal.Decimal `json:"electricityPPN"`
	ElectricityAreaBersama decimal.Decimal `json:"electricityAreaBersama"`
	ElectricityPJU         decimal.Decimal `json:"electricityPJU"`
	ElectricityKwh         decimal.Decimal `json:"electricityKwh"`
	ElectricityTariff      decimal.Decimal `json:"electricityTariff"`

	Water             decimal.Decimal `json:"water"`
	WaterPotable      decimal.Decimal `json:"waterPotable"`
	WaterNonPotable   decimal.Decimal `json:"waterNonPotable"`
	WaterAirLimbah    decimal.Decimal `json:"waterAirLimbah"`
	WaterPPN          decimal.Decimal `json:"waterPPN"`
	WaterPemeliharaan decimal.Decimal `json:"waterPemeliharaan"`
	WaterAreaBersama  decimal.Decimal `json:"waterAreaBersama"`
	WaterM3           decimal.Decimal `json:"waterM3"`
	WaterTariff       decimal.Decimal `json:"waterTariff"`

	Fitout decimal.Decimal `json:"fitout"`
	Total  decimal.Decimal `json:"total"`

	Source *string `json:"source"`
}

// RentUsageView selects what a rent trend reports per period.
type RentUsageView string

const (
	RentViewCost             RentUsageView = "cost"
	RentViewElectricityUsage RentUsageView = "electricity_usage"
	RentViewWaterUsage       RentUsageView = "water_usage"
)

// RentTrendsParams are the query parameters for rent trends.
type RentTrendsParams struct {
	Granularity string
	Category    *domain.RentCategory
	UsageView   RentUsageView
}

// RentTrendPoint is one bucket of a rent trend.
// Value is an IDR cost for the cost view, kWh for electricity usage
// and cubic meters for water usage.
type RentTrendPoint struct {
	Period string          `json:"period"`
	Value  decimal.Decimal `json:"value"`
	Count  int             `json:"count"`
}

// RentBreakdownItem is the cost of one bill component.
type RentBreakdownItem struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// RentBreakdownResponse is the component breakdown of one period's bill.
type RentBreakdownResponse struct {
	Period string              `json:"period"`
	Total  decimal.Decimal     `json:"total"`
	Items  []RentBreakdownItem `json:"items"`
}
