package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/finance/payments/dto"
	helper "rumahmengaji_backend/internals/helpers"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func TestPayments(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	other := testdb.Center(t, db)
	st := testdb.Student(t, db, center.StudyCenterID)
	recorder := testdb.User(t, db, constants.RoleCenterManager)

	svc := NewPaymentService(db)
	svc.today = func() dbtime.Date { return dbtime.MustParseDate("2024-03-05") }

	req := dto.CreatePaymentRequest{
		StudentID:     st.StudentID,
		StudyCenterID: center.StudyCenterID,
		Amount:        decimal.RequireFromString("150.50"),
		Description:   "Yuran Mac 2024",
		DueDate:       dbtime.MustParseDate("2024-03-01"),
		RecordedBy:    recorder.ID,
	}

	t.Run("create keeps exact amount", func(t *testing.T) {
		m, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, constants.PaymentPending, m.PaymentStatus)

		rows, total, err := svc.ListByStudent(ctx, st.StudentID, "", 0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, rows, 1)
		assert.Equal(t, "150.50", helper.Money(rows[0].PaymentAmount))
		assert.False(t, rows[0].PaymentPaidDate.Valid())
	})

	t.Run("ownership mismatch", func(t *testing.T) {
		bad := req
		bad.StudyCenterID = other.StudyCenterID
		_, err := svc.Create(ctx, bad)
		assert.Equal(t, apperror.KindOwnershipMismatch, apperror.KindOf(err))
	})

	t.Run("invalid amount", func(t *testing.T) {
		bad := req
		bad.Amount = decimal.Zero
		_, err := svc.Create(ctx, bad)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

		bad.Amount = decimal.RequireFromString("10.999")
		_, err = svc.Create(ctx, bad)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("paid stamps today", func(t *testing.T) {
		m, err := svc.Create(ctx, req)
		require.NoError(t, err)

		paid := constants.PaymentPaid
		out, err := svc.Update(ctx, m.PaymentID, dto.UpdatePaymentRequest{Status: &paid})
		require.NoError(t, err)
		assert.Equal(t, constants.PaymentPaid, out.PaymentStatus)
		assert.Equal(t, "2024-03-05", out.PaymentPaidDate.String())

		rows, _, err := svc.ListByStudent(ctx, st.StudentID, constants.PaymentPaid, 0, 0)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "2024-03-05", rows[0].PaymentPaidDate.String())
	})

	t.Run("explicit paid date wins", func(t *testing.T) {
		m, err := svc.Create(ctx, req)
		require.NoError(t, err)

		paid := constants.PaymentPaid
		when := dbtime.MustParseDate("2024-02-28")
		out, err := svc.Update(ctx, m.PaymentID, dto.UpdatePaymentRequest{Status: &paid, PaidDate: &when})
		require.NoError(t, err)
		assert.Equal(t, "2024-02-28", out.PaymentPaidDate.String())
	})

	t.Run("update errors", func(t *testing.T) {
		bogus := "refunded"
		_, err := svc.Update(ctx, 1, dto.UpdatePaymentRequest{Status: &bogus})
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

		paid := constants.PaymentPaid
		_, err = svc.Update(ctx, 9999, dto.UpdatePaymentRequest{Status: &paid})
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

		_, _, err = svc.ListByStudent(ctx, 9999, "", 0, 0)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})
}
