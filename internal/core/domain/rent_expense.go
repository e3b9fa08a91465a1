package domain

import "github.com/shopspring/decimal"

// RentCategory names one cost component of a monthly apartment bill.
type RentCategory string

const (
	RentElectricity   RentCategory = "electricity"
	RentWater         RentCategory = "water"
	RentServiceCharge RentCategory = "service_charge"
	RentSinkingFund   RentCategory = "sinking_fund"
	RentFitout        RentCategory = "fitout"
)

// RentExpense represents one monthly apartment bill with its full IDR
// component breakdown. Period is "YYYY-MM".
type RentExpense struct {
	RentExpenseID string `json:"rentExpenseID"`
	Period        string `json:"period"`
	Currency      string `json:"currency"`

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

	Source *string `json:"source,omitempty"`
	AuditFields
}

// ComponentAmount returns the cost of one named component of the bill.
func (r RentExpense) ComponentAmount(category RentCategory) decimal.Decimal {
	switch category {
	case RentElectricity:
		return r.Electricity
	case RentWater:
		return r.Water
	case RentServiceCharge:
		return r.ServiceCharge.Add(r.ServiceChargePPN)
	case RentSinkingFund:
		return r.SinkingFund
	case RentFitout:
		return r.Fitout
	default:
		return r.Total
	}
}
