package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"rumahmengaji_backend/internals/constants"
	fundModel "rumahmengaji_backend/internals/features/finance/fund_transactions/model"
	paymentModel "rumahmengaji_backend/internals/features/finance/payments/model"
	distributionModel "rumahmengaji_backend/internals/features/materials/distributions/model"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
)

// Window: batas tanggal inklusif; zero Date = tanpa batas.
type Window struct {
	From dbtime.Date
	To   dbtime.Date
}

func (w Window) apply(db *gorm.DB, column string) *gorm.DB {
	if w.From.Valid() {
		db = db.Where(column+" >= ?", w.From)
	}
	if w.To.Valid() {
		db = db.Where(column+" <= ?", w.To)
	}
	return db
}

type MonthlyTrend struct {
	Month     string // YYYY-MM
	Payments  decimal.Decimal
	Donations decimal.Decimal
}

type FinancialReport struct {
	StudyCenterID    uint
	Window           Window
	TotalPayments    decimal.Decimal
	TotalDonations   decimal.Decimal
	TotalExpenses    decimal.Decimal
	PaymentsByStatus map[string]decimal.Decimal
	FundsByType      map[string]decimal.Decimal
	MonthlyTrends    []MonthlyTrend
}

// baris sumber (kolom minimal)
type paymentRow struct {
	Status   string          `gorm:"column:payment_status"`
	Amount   decimal.Decimal `gorm:"column:payment_amount"`
	PaidDate dbtime.Date     `gorm:"column:payment_paid_date"`
}

type fundRow struct {
	FundType string          `gorm:"column:fund_transaction_fund_type"`
	Amount   decimal.Decimal `gorm:"column:fund_transaction_amount"`
	Date     dbtime.Date     `gorm:"column:fund_transaction_date"`
}

type FinancialReportService struct {
	DB *gorm.DB
}

func NewFinancialReportService(db *gorm.DB) *FinancialReportService {
	return &FinancialReportService{DB: db}
}

// Build: pusat tanpa data (termasuk id yang tidak ada) → laporan nol, bukan error.
func (s *FinancialReportService) Build(ctx context.Context, centerID uint, w Window) (*FinancialReport, error) {
	if w.From.Valid() && w.To.Valid() && w.To.Before(w.From) {
		return nil, apperror.Validation("date_to must not be before date_from")
	}
	db := s.DB.WithContext(ctx)

	// pembayaran per due_date
	var byDue []paymentRow
	if err := w.apply(db.Model(&paymentModel.PaymentModel{}), "payment_due_date").
		Select("payment_status, payment_amount, payment_paid_date").
		Where("payment_study_center_id = ?", centerID).
		Scan(&byDue).Error; err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "load payments")
	}

	// pembayaran lunas per paid_date (untuk tren bulanan)
	var paid []paymentRow
	if err := w.apply(db.Model(&paymentModel.PaymentModel{}), "payment_paid_date").
		Select("payment_status, payment_amount, payment_paid_date").
		Where("payment_study_center_id = ? AND payment_status = ? AND payment_paid_date IS NOT NULL",
			centerID, constants.PaymentPaid).
		Scan(&paid).Error; err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "load paid payments")
	}

	var funds []fundRow
	if err := w.apply(db.Model(&fundModel.FundTransactionModel{}), "fund_transaction_date").
		Select("fund_transaction_fund_type, fund_transaction_amount, fund_transaction_date").
		Where("fund_transaction_study_center_id = ?", centerID).
		Scan(&funds).Error; err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "load fund transactions")
	}

	var prices []decimal.NullDecimal
	if err := w.apply(db.Model(&distributionModel.MaterialDistributionModel{}), "material_distribution_date").
		Where("material_distribution_study_center_id = ? AND material_distribution_is_sale = ?", centerID, true).
		Pluck("material_distribution_price", &prices).Error; err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "load material sales")
	}

	r := aggregate(byDue, paid, funds, prices)
	r.StudyCenterID = centerID
	r.Window = w
	return r, nil
}

func aggregate(byDue, paid []paymentRow, funds []fundRow, prices []decimal.NullDecimal) *FinancialReport {
	r := &FinancialReport{
		TotalPayments:    decimal.Zero,
		TotalDonations:   decimal.Zero,
		TotalExpenses:    decimal.Zero,
		PaymentsByStatus: map[string]decimal.Decimal{},
		FundsByType:      map[string]decimal.Decimal{},
		MonthlyTrends:    []MonthlyTrend{},
	}

	for _, p := range byDue {
		r.PaymentsByStatus[p.Status] = r.PaymentsByStatus[p.Status].Add(p.Amount)
		if p.Status == constants.PaymentPaid {
			r.TotalPayments = r.TotalPayments.Add(p.Amount)
		}
	}

	months := map[string]*MonthlyTrend{}
	month := func(key string) *MonthlyTrend {
		t, ok := months[key]
		if !ok {
			t = &MonthlyTrend{Month: key, Payments: decimal.Zero, Donations: decimal.Zero}
			months[key] = t
		}
		return t
	}
	for _, p := range paid {
		if !p.PaidDate.Valid() {
			continue
		}
		t := month(p.PaidDate.Month())
		t.Payments = t.Payments.Add(p.Amount)
	}

	for _, f := range funds {
		r.TotalDonations = r.TotalDonations.Add(f.Amount)
		r.FundsByType[f.FundType] = r.FundsByType[f.FundType].Add(f.Amount)
		if f.Date.Valid() {
			t := month(f.Date.Month())
			t.Donations = t.Donations.Add(f.Amount)
		}
	}

	for _, p := range prices {
		if p.Valid {
			r.TotalExpenses = r.TotalExpenses.Add(p.Decimal)
		}
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.MonthlyTrends = append(r.MonthlyTrends, *months[k])
	}
	return r
}
