package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/series"
)

func TestWriteRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "out.csv")
	rows := [][]string{
		{"a", "b"},
		{"1", "value, with comma"},
	}
	require.NoError(t, WriteRows(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"value, with comma\"\n", string(data))
}

func TestWriteDaily(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.csv")
	points := []series.DailyPoint{
		{Date: time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC), Value: 1099},
		{Date: time.Date(2021, time.June, 16, 0, 0, 0, 0, time.UTC), Value: -1},
	}
	require.NoError(t, WriteDaily(path, points))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,value\n2021-06-15,1099\n2021-06-16,-1\n", string(data))
}

func TestWritePoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.csv")
	points := []series.Point{
		{Time: 1293840000, Value: 1099},
		{Time: 1293843600, Value: 1199},
	}
	require.NoError(t, WritePoints(path, points))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,value\n1293840000,1099\n1293843600,1199\n", string(data))
}

func TestDailyCSVHandleProduct(t *testing.T) {
	dir := t.TempDir()
	h := &DailyCSV{
		Dir:     dir,
		Fields:  []api.Field{api.FieldAmazon, api.FieldNew},
		Reducer: series.Min,
	}

	// Keepa minute 5497920 is 2021-06-15T00:00:00Z.
	p := api.Product{
		ASIN: "B074DT46QR",
		CSV:  [][]int{{5497920, 1099, 5499360, 999}, nil},
	}
	require.NoError(t, h.HandleProduct(p))

	data, err := os.ReadFile(filepath.Join(dir, "B074DT46QR_AMAZON.csv"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, "date,value", lines[0])
	assert.Equal(t, "2021-06-15,1099", lines[1])
	assert.Equal(t, "2021-06-16,999", lines[2])
	// The series runs through today, one row per day.
	assert.Greater(t, len(lines), 1000)

	// No file for the field without history.
	_, err = os.Stat(filepath.Join(dir, "B074DT46QR_NEW.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestDailyCSVPropagatesWriteErrors(t *testing.T) {
	// Using an existing file as the directory makes MkdirAll fail.
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	h := &DailyCSV{
		Dir:     filepath.Join(blocked, "sub"),
		Fields:  []api.Field{api.FieldAmazon},
		Reducer: series.Min,
	}
	p := api.Product{ASIN: "B074DT46QR", CSV: [][]int{{5497920, 1099}}}
	assert.Error(t, h.HandleProduct(p))
}
