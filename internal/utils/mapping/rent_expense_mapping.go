package mapping

import (
	"github.com/andridns/expense-tracker-backend/internal/core/domain"
	"github.com/andridns/expense-tracker-backend/internal/models"
)

// ToModelRentExpense converts a domain RentExpense to a model RentExpense
func ToModelRentExpense(d domain.RentExpense) models.RentExpense {
	return models.RentExpense{
		RentExpenseID: d.RentExpenseID,
		Period:        d.Period,
		Currency:      d.Currency,

		SinkingFund:      d.SinkingFund,
		ServiceCharge:    d.ServiceCharge,
		ServiceChargePPN: d.ServiceChargePPN,

		Electricity:            d.Electricity,
		ElectricityUsage:       d.ElectricityUsage,
		ElectricityPPN:         d.ElectricityPPN,
		ElectricityAreaBersama: d.ElectricityAreaBersama,
		ElectricityPJU:         d.ElectricityPJU,
		ElectricityKwh:         d.ElectricityKwh,
		ElectricityTariff:      d.ElectricityTariff,

		Water:             d.Water,
		WaterPotable:      d.WaterPotable,
		WaterNonPotable:   d.WaterNonPotable,
		WaterAirLimbah:    d.WaterAirLimbah,
		WaterPPN:          d.WaterPPN,
		WaterPemeliharaan: d.WaterPemeliharaan,
		WaterAreaBersama:  d.WaterAreaBersama,
		WaterM3:           d.WaterM3,
		WaterTariff:       d.WaterTariff,

		Fitout: d.Fitout,
		Total:  d.Total,

		Source:      d.Source,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRentExpense converts a model RentExpense to a domain RentExpense
func ToDomainRentExpense(m models.RentExpense) domain.RentExpense {
	return domain.RentExpense{
		RentExpenseID: m.RentExpenseID,
		Period:        m.Period,
		Currency:      m.Currency,

		SinkingFund:      m.SinkingFund,
		ServiceCharge:    m.ServiceCharge,
		ServiceChargePPN: m.ServiceChargePPN,

		Electricity:            m.Electricity,
		ElectricityUsage:       m.ElectricityUsage,
		ElectricityPPN:         m.ElectricityPPN,
		ElectricityAreaBersama: m.ElectricityAreaBersama,
		ElectricityPJU:         m.ElectricityPJU,
		ElectricityKwh:         m.ElectricityKwh,
		ElectricityTariff:      m.ElectricityTariff,

		Water:             m.Water,
		WaterPotable:      m.WaterPotable,
		WaterNonPotable:   m.WaterNonPotable,
		WaterAirLimbah:    m.WaterAirLimbah,
		WaterPPN:          m.WaterPPN,
		WaterPemeliharaan: m.WaterPemeliharaan,
		WaterAreaBersama:  m.WaterAreaBersama,
		WaterM3:           m.WaterM3,
		WaterTariff:       m.WaterTariff,

		Fitout: m.Fitout,
		Total:  m.Total,

		Source:      m.Source,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRentExpenseSlice converts a slice of model RentExpenses to domain RentExpenses
func ToDomainRentExpenseSlice(ms []models.RentExpense) []domain.RentExpense {
	ds := make([]domain.RentExpense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRentExpense(m)
	}
	return ds
}
