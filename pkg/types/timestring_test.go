package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:30", want: "09:30"},
		{in: "17:45:00", want: "17:45"},
		{in: "24:00", want: "24:00"},
		{in: "24:30", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10:00:15", wantErr: true},
		{in: "10", wantErr: true},
		{in: "ten:00", wantErr: true},
		{in: "", wantErr: true},
		{in: "100:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := MustTimeString("23:00")

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "24:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.True(t, end.IsAfter(start))

	_, err = end.AddMinutes(1)
	require.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Format12h(t *testing.T) {
	assert.Equal(t, "9:00 AM", MustTimeString("09:00").Format12h())
	assert.Equal(t, "12:00 PM", MustTimeString("12:00").Format12h())
	assert.Equal(t, "5:30 PM", MustTimeString("17:30").Format12h())
	assert.Equal(t, "", TimeString{}.Format12h())
}

func TestTimeString_ZeroValue(t *testing.T) {
	var ts TimeString
	assert.True(t, ts.IsZero())
	assert.Error(t, ts.Validate())
	assert.Equal(t, "", ts.String())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestTimeString_JSON(t *testing.T) {
	type payload struct {
		Start TimeString `json:"start"`
	}

	data, err := json.Marshal(payload{Start: MustTimeString("08:00")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:00"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"10:00"}`), &p))
	assert.Equal(t, MustTimeString("10:00"), p.Start)

	assert.Error(t, json.Unmarshal([]byte(`{"start":"10am"}`), &p))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("11:00:00")))
	assert.Equal(t, "11:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_On(t *testing.T) {
	day := time.Date(2026, 10, 20, 17, 12, 0, 0, time.UTC)
	got := MustTimeString("10:15").On(day)
	assert.Equal(t, time.Date(2026, 10, 20, 10, 15, 0, 0, time.UTC), got)
}
