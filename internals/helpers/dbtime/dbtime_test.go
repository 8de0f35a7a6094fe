package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodParse(t *testing.T) {
	tod, err := Parse("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", tod.String())
	assert.Equal(t, 9*3600, tod.Seconds())

	tod, err = Parse("21:30:15.000000")
	require.NoError(t, err)
	assert.Equal(t, "21:30:15", tod.String())

	_, err = Parse("25:00")
	assert.Error(t, err)
}

func TestTodOrderingAndScan(t *testing.T) {
	a, b := MustParse("09:00"), MustParse("10:30")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))

	var fromStr Tod
	require.NoError(t, fromStr.Scan("10:30:00"))
	assert.Equal(t, b.Seconds(), fromStr.Seconds())

	var fromTime Tod
	require.NoError(t, fromTime.Scan(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, b.Seconds(), fromTime.Seconds())

	v, err := b.Value()
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", v)
}

func TestTodJSON(t *testing.T) {
	var body struct {
		Start Tod `json:"start_time"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start_time":"08:15"}`), &body))
	assert.Equal(t, "08:15:00", body.Start.String())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_time":"08:15"}`, string(out))
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.True(t, d.Valid())
	assert.Equal(t, "2024-03", d.Month())
	assert.Equal(t, "2024-03-15", d.String())

	// format sqlite
	var scanned Date
	require.NoError(t, scanned.Scan("2024-03-15 00:00:00+00:00"))
	assert.Equal(t, d, scanned)

	assert.True(t, MustParseDate("2024-01-31").Before(d))
	assert.True(t, d.After(MustParseDate("2024-03-14")))

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestDateZeroIsNull(t *testing.T) {
	var d Date
	assert.False(t, d.Valid())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	require.NoError(t, json.Unmarshal([]byte(`"2024-12-01"`), &d))
	assert.Equal(t, "2024-12-01", d.String())
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.False(t, d.Valid())
}
