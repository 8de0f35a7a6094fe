package helper

import (
	"github.com/shopspring/decimal"

	"rumahmengaji_backend/internals/helpers/apperror"
)

// Money renders an amount the way it is stored: two fractional digits.
func Money(d decimal.Decimal) string { return d.StringFixed(2) }

// NullMoney → nil kalau tidak ada harga.
func NullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}

// ValidateAmount: positif dan maksimal 2 digit desimal (numeric(10,2)).
func ValidateAmount(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return apperror.Newf(apperror.KindValidation, "%s must be greater than 0", field)
	}
	if !d.Equal(d.Round(2)) {
		return apperror.Newf(apperror.KindValidation, "%s must have at most 2 decimal places", field)
	}
	if d.GreaterThanOrEqual(decimal.New(1, 8)) {
		return apperror.Newf(apperror.KindValidation, "%s is too large", field)
	}
	return nil
}
