package dto

import (
	"rumahmengaji_backend/internals/features/finance/reports/service"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

type MonthlyTrendResponse struct {
	Month     string `json:"month"`
	Payments  string `json:"payments"`
	Donations string `json:"donations"`
}

// FinancialReportResponse: semua nominal string 2 desimal.
type FinancialReportResponse struct {
	StudyCenterID    uint                   `json:"study_center_id"`
	DateFrom         dbtime.Date            `json:"date_from"`
	DateTo           dbtime.Date            `json:"date_to"`
	TotalPayments    string                 `json:"total_payments"`
	TotalDonations   string                 `json:"total_donations"`
	TotalExpenses    string                 `json:"total_expenses"`
	PaymentsByStatus map[string]string      `json:"payments_by_status"`
	FundsByType      map[string]string      `json:"funds_by_type"`
	MonthlyTrends    []MonthlyTrendResponse `json:"monthly_trends"`
}

func FromReport(r *service.FinancialReport) FinancialReportResponse {
	out := FinancialReportResponse{
		StudyCenterID:    r.StudyCenterID,
		DateFrom:         r.Window.From,
		DateTo:           r.Window.To,
		TotalPayments:    helper.Money(r.TotalPayments),
		TotalDonations:   helper.Money(r.TotalDonations),
		TotalExpenses:    helper.Money(r.TotalExpenses),
		PaymentsByStatus: make(map[string]string, len(r.PaymentsByStatus)),
		FundsByType:      make(map[string]string, len(r.FundsByType)),
		MonthlyTrends:    make([]MonthlyTrendResponse, 0, len(r.MonthlyTrends)),
	}
	for k, v := range r.PaymentsByStatus {
		out.PaymentsByStatus[k] = helper.Money(v)
	}
	for k, v := range r.FundsByType {
		out.FundsByType[k] = helper.Money(v)
	}
	for _, t := range r.MonthlyTrends {
		out.MonthlyTrends = append(out.MonthlyTrends, MonthlyTrendResponse{
			Month:     t.Month,
			Payments:  helper.Money(t.Payments),
			Donations: helper.Money(t.Donations),
		})
	}
	return out
}
