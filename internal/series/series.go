// Package series decodes and resamples Keepa product histories.
//
// A raw history is a flat integer array interleaving Keepa minute
// timestamps with values. Format turns it into (Unix seconds, value)
// points; Interpolate resamples points onto a daily UTC grid so sparse
// histories line up across products.
package series

import (
	"fmt"
	"time"

	"github.com/deuexpo/keepa/internal/keepatime"
)

// Point is one sample of a history: Unix seconds and the raw integer
// value (prices in the marketplace's smallest currency unit, -1 where
// no offer existed).
type Point struct {
	Time  int64
	Value int
}

// DailyPoint is one day of an interpolated history.
type DailyPoint struct {
	Date  time.Time
	Value int
}

// Format decodes a raw history array (timestamp, value, timestamp, value,
// ...) into points with Unix-second timestamps. A trailing unpaired element
// is ignored.
//
// When minTime is non-zero the result is truncated to entries newer than
// minTime, keeping one entry before the cutoff so the series still has its
// left edge; when no entry is newer than minTime the final two entries
// remain.
func Format(raw []int, minTime int64) []Point {
	pts := make([]Point, 0, len(raw)/2)
	for i := 0; i+1 < len(raw); i += 2 {
		pts = append(pts, Point{Time: keepatime.Unix(raw[i]), Value: raw[i+1]})
	}
	if minTime == 0 || len(pts) == 0 {
		return pts
	}

	idx := 0
	for i := range pts {
		idx = i
		if pts[i].Time > minTime {
			break
		}
	}
	if idx > 0 {
		idx--
	}
	return pts[idx:]
}

// Interpolate resamples formatted points onto a daily UTC grid from the day
// of the first point through today inclusive. Days with samples reduce them
// with fn; days without samples carry the previous day's value forward. A
// nil fn means Min. Empty input yields an empty series.
func Interpolate(pts []Point, fn Reducer) []DailyPoint {
	return InterpolateUntil(pts, fn, time.Now().UTC())
}

// InterpolateUntil is Interpolate with an explicit end day instead of today.
// Points are expected in ascending time order, as the API returns them.
func InterpolateUntil(pts []Point, fn Reducer, until time.Time) []DailyPoint {
	if len(pts) == 0 {
		return nil
	}
	if fn == nil {
		fn = Min
	}

	day := keepatime.Date(pts[0].Time)
	end := keepatime.Date(until.Unix())

	var out []DailyPoint
	var vals []int
	var value int
	i := 0
	for !day.After(end) {
		for i < len(pts) && keepatime.Date(pts[i].Time).Equal(day) {
			vals = append(vals, pts[i].Value)
			i++
		}
		if len(vals) > 0 {
			value = fn(vals)
			vals = vals[:0]
		}
		out = append(out, DailyPoint{Date: day, Value: value})
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// Reducer collapses the samples of one UTC day into a single value.
// Reducers are only ever called with at least one sample; an empty call is
// a programming error and panics.
type Reducer func(vals []int) int

// Min returns the smallest sample of the day.
func Min(vals []int) int {
	m := mustFirst(vals)
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest sample of the day.
func Max(vals []int) int {
	m := mustFirst(vals)
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Mean returns the truncating integer mean of the day's samples.
func Mean(vals []int) int {
	sum := mustFirst(vals)
	for _, v := range vals[1:] {
		sum += v
	}
	return sum / len(vals)
}

func mustFirst(vals []int) int {
	if len(vals) == 0 {
		panic("series: reduce of empty value set")
	}
	return vals[0]
}

// ParseReducer resolves a reducer by its configuration name.
func ParseReducer(name string) (Reducer, error) {
	switch name {
	case "min":
		return Min, nil
	case "max":
		return Max, nil
	case "mean":
		return Mean, nil
	default:
		return nil, fmt.Errorf("unknown reducer %q (want min, max or mean)", name)
	}
}
