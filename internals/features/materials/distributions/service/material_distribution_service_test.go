package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahmengaji_backend/internals/constants"
	"rumahmengaji_backend/internals/features/materials/distributions/dto"
	"rumahmengaji_backend/internals/helpers/apperror"
	"rumahmengaji_backend/internals/helpers/dbtime"
	"rumahmengaji_backend/internals/helpers/testdb"
)

func price(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestCheckPrice(t *testing.T) {
	cases := []struct {
		name   string
		isSale bool
		price  decimal.NullDecimal
		want   apperror.Kind
	}{
		{"sale without price", true, decimal.NullDecimal{}, apperror.KindInvalidPrice},
		{"sale with zero", true, price("0"), apperror.KindInvalidPrice},
		{"sale with negative", true, price("-3.00"), apperror.KindInvalidPrice},
		{"sale with too many decimals", true, price("1.005"), apperror.KindValidation},
		{"gift with price", false, price("15.00"), apperror.KindUnexpectedPrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckPrice(tc.isSale, tc.price)
			require.Error(t, err)
			assert.Equal(t, tc.want, apperror.KindOf(err))
		})
	}

	assert.NoError(t, CheckPrice(true, price("25.50")))
	assert.NoError(t, CheckPrice(false, decimal.NullDecimal{}))
}

func TestCreateMaterialDistribution(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	center := testdb.Center(t, db)
	recorder := testdb.User(t, db, constants.RoleCenterManager)
	recipient := testdb.User(t, db, constants.RoleStudent)
	svc := NewMaterialDistributionService(db)

	base := func() dto.CreateMaterialDistributionRequest {
		return dto.CreateMaterialDistributionRequest{
			StudyCenterID:    center.StudyCenterID,
			MaterialType:     constants.MaterialQuran,
			ItemName:         "Mushaf Rasm Uthmani",
			Quantity:         2,
			RecipientID:      &recipient.ID,
			DistributionDate: dbtime.MustParseDate("2024-02-01"),
			RecordedBy:       recorder.ID,
		}
	}

	sale := base()
	sale.IsSale = true
	_, err := svc.Create(ctx, sale)
	assert.Equal(t, apperror.KindInvalidPrice, apperror.KindOf(err))

	gift := base()
	gift.Price = price("15.00")
	_, err = svc.Create(ctx, gift)
	assert.Equal(t, apperror.KindUnexpectedPrice, apperror.KindOf(err))

	sale.Price = price("15.50")
	m, err := svc.Create(ctx, sale)
	require.NoError(t, err)
	assert.True(t, m.MaterialDistributionIsSale)

	_, err = svc.Create(ctx, base())
	require.NoError(t, err)

	zero := base()
	zero.Quantity = 0
	_, err = svc.Create(ctx, zero)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	ghost := base()
	var missing uint = 9999
	ghost.RecipientID = &missing
	_, err = svc.Create(ctx, ghost)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	onlySales := true
	rows, total, err := svc.List(ctx, dto.ListMaterialDistributionsQuery{StudyCenterID: &center.StudyCenterID, IsSale: &onlySales})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	require.True(t, rows[0].MaterialDistributionPrice.Valid)
	assert.True(t, decimal.RequireFromString("15.50").Equal(rows[0].MaterialDistributionPrice.Decimal))

	_, total, err = svc.List(ctx, dto.ListMaterialDistributionsQuery{StudyCenterID: &center.StudyCenterID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}
