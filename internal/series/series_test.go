package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Keepa minutes 0, 60, 120, 180 as Unix seconds.
const (
	t0 = int64(1293840000)
	t1 = int64(1293843600)
	t2 = int64(1293847200)
	t3 = int64(1293850800)
)

func TestFormat(t *testing.T) {
	raw := []int{0, 10, 60, 11, 120, 12, 180, 13}
	all := []Point{{t0, 10}, {t1, 11}, {t2, 12}, {t3, 13}}

	tests := []struct {
		name    string
		raw     []int
		minTime int64
		want    []Point
	}{
		{"no cutoff", raw, 0, all},
		{"cutoff before first entry", raw, t0 - 1, all},
		{"cutoff keeps one entry before it", raw, t1, all[1:]},
		{"cutoff between entries", raw, t1 + 1, all[1:]},
		{"cutoff past the end keeps final two", raw, t3 + 100, all[2:]},
		{"single entry survives any cutoff", []int{0, 10}, t3, all[:1]},
		{"empty input", nil, t1, []Point{}},
		{"trailing unpaired element dropped", []int{0, 10, 60}, 0, all[:1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw, tt.minTime))
		})
	}
}

func TestInterpolateUntil(t *testing.T) {
	at := func(day, hour int) int64 {
		return time.Date(2021, time.June, day, hour, 0, 0, 0, time.UTC).Unix()
	}
	date := func(day int) time.Time {
		return time.Date(2021, time.June, day, 0, 0, 0, 0, time.UTC)
	}

	t.Run("reduces same-day samples and holds forward", func(t *testing.T) {
		pts := []Point{{at(15, 3), 5}, {at(15, 9), 3}, {at(16, 12), 7}}
		got := InterpolateUntil(pts, Min, date(17))
		want := []DailyPoint{
			{date(15), 3},
			{date(16), 7},
			{date(17), 7},
		}
		assert.Equal(t, want, got)
	})

	t.Run("gap days carry the last value", func(t *testing.T) {
		pts := []Point{{at(15, 3), 5}, {at(18, 9), 2}}
		got := InterpolateUntil(pts, nil, date(18))
		want := []DailyPoint{
			{date(15), 5},
			{date(16), 5},
			{date(17), 5},
			{date(18), 2},
		}
		assert.Equal(t, want, got)
	})

	t.Run("reducer choice changes same-day result", func(t *testing.T) {
		pts := []Point{{at(15, 3), 5}, {at(15, 9), 3}}
		assert.Equal(t, 5, InterpolateUntil(pts, Max, date(15))[0].Value)
		assert.Equal(t, 4, InterpolateUntil(pts, Mean, date(15))[0].Value)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, InterpolateUntil(nil, Min, date(15)))
	})

	t.Run("end before first sample", func(t *testing.T) {
		pts := []Point{{at(15, 3), 5}}
		assert.Empty(t, InterpolateUntil(pts, Min, date(14)))
	})
}

func TestReducers(t *testing.T) {
	vals := []int{3, 1, 2}
	assert.Equal(t, 1, Min(vals))
	assert.Equal(t, 3, Max(vals))
	assert.Equal(t, 2, Mean(vals))

	// Truncating mean.
	assert.Equal(t, 1, Mean([]int{1, 2}))

	assert.Panics(t, func() { Min(nil) })
	assert.Panics(t, func() { Max(nil) })
	assert.Panics(t, func() { Mean(nil) })
}

func TestParseReducer(t *testing.T) {
	for _, name := range []string{"min", "max", "mean"} {
		fn, err := ParseReducer(name)
		assert.NoError(t, err)
		assert.NotNil(t, fn)
	}

	fn, err := ParseReducer("median")
	assert.Error(t, err)
	assert.Nil(t, fn)
}
