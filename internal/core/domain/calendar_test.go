package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-01", want: NewDate(2024, 1, 1)},
		{in: "2024-02-29", want: NewDate(2024, 2, 29)},
		{in: "2024-02-30", wantErr: true},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-1-1", wantErr: true},
		{in: "", wantErr: true},
		{in: "01/01/2024", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestNewDateRollsOver(t *testing.T) {
	assert.Equal(t, NewDate(2024, 2, 1), NewDate(2024, 1, 32))
	assert.Equal(t, NewDate(2023, 12, 31), NewDate(2024, 1, 0))
	assert.Equal(t, NewDate(2025, 1, 1), NewDate(2024, 13, 1))
}

func TestDateArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		from, to Date
		days     int
	}{
		{"same day", NewDate(2024, 1, 1), NewDate(2024, 1, 1), 0},
		{"across leap day", NewDate(2024, 2, 28), NewDate(2024, 3, 1), 2},
		{"no leap day", NewDate(2023, 2, 28), NewDate(2023, 3, 1), 1},
		{"across new year", NewDate(2023, 12, 31), NewDate(2024, 1, 1), 1},
		{"backwards", NewDate(2024, 1, 10), NewDate(2024, 1, 1), -9},
		{"leap year", NewDate(2024, 1, 1), NewDate(2025, 1, 1), 366},
		{"whole calendar", NewDate(1, 1, 1), NewDate(9999, 12, 31), 3652058},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.days, tt.to.DaysSince(tt.from))
			assert.Equal(t, tt.to, tt.from.AddDays(tt.days))
		})
	}
}

func TestDateOrderingAndWeeks(t *testing.T) {
	mon, sun := NewDate(2024, 1, 1), NewDate(2024, 1, 7)
	assert.True(t, mon.Before(sun))
	assert.True(t, sun.After(mon))
	assert.False(t, mon.Before(mon))
	assert.Equal(t, time.Monday, mon.Weekday())

	y, w := sun.ISOWeek()
	assert.Equal(t, 2024, y)
	assert.Equal(t, 1, w)
	y, w = NewDate(2024, 12, 30).ISOWeek()
	assert.Equal(t, 2025, y)
	assert.Equal(t, 1, w)
}

func TestDateOfIgnoresClock(t *testing.T) {
	late := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, NewDate(2024, 3, 10), DateOf(late))
	assert.Equal(t, NewDate(2024, 3, 11), DateOf(late.Add(time.Second)))
}

func TestParseAnchorTime(t *testing.T) {
	tests := []struct {
		in      string
		want    AnchorTime
		wantErr bool
	}{
		{in: "09:00", want: MustAnchorTime(9, 0)},
		{in: "00:00", want: MustAnchorTime(0, 0)},
		{in: "23:59", want: MustAnchorTime(23, 59)},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchorTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestNewAnchorTimeRange(t *testing.T) {
	for _, hm := range [][2]int{{-1, 0}, {24, 0}, {0, -1}, {0, 60}} {
		_, err := NewAnchorTime(hm[0], hm[1])
		assert.Error(t, err, "%02d:%02d", hm[0], hm[1])
	}
	assert.Panics(t, func() { MustAnchorTime(25, 0) })
	assert.True(t, MustAnchorTime(8, 30).Before(MustAnchorTime(9, 0)))
	assert.Equal(t, 510, MustAnchorTime(8, 30).Minutes())
}

func TestSlotKeyJSON(t *testing.T) {
	key := SlotKey{Date: NewDate(2024, 1, 2), Time: MustAnchorTime(15, 0)}
	raw, err := json.Marshal(key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-02","time":"15:00"}`, string(raw))

	var back SlotKey
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, key, back)
	assert.Equal(t, time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC), key.At())

	assert.Error(t, json.Unmarshal([]byte(`{"date":"2024-02-30","time":"15:00"}`), &back))
	assert.Error(t, json.Unmarshal([]byte(`{"date":"2024-01-02","time":"24:00"}`), &back))
}
