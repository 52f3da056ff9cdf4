// Package export writes product histories to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/deuexpo/keepa/internal/api"
	"github.com/deuexpo/keepa/internal/series"
)

// WriteRows writes raw CSV rows to path, creating parent directories as
// needed. An existing file is replaced.
func WriteRows(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteDaily writes an interpolated history as "date,value" rows.
func WriteDaily(path string, points []series.DailyPoint) error {
	rows := make([][]string, 0, len(points)+1)
	rows = append(rows, []string{"date", "value"})
	for _, p := range points {
		rows = append(rows, []string{p.Date.Format("2006-01-02"), strconv.Itoa(p.Value)})
	}
	return WriteRows(path, rows)
}

// WritePoints writes a formatted history as "timestamp,value" rows, with
// timestamps in Unix seconds.
func WritePoints(path string, points []series.Point) error {
	rows := make([][]string, 0, len(points)+1)
	rows = append(rows, []string{"timestamp", "value"})
	for _, p := range points {
		rows = append(rows, []string{strconv.FormatInt(p.Time, 10), strconv.Itoa(p.Value)})
	}
	return WriteRows(path, rows)
}

// DailyCSV writes fetched products as per-field daily history files named
// <ASIN>_<FIELD>.csv under Dir. It satisfies the poller's ProductHandler.
type DailyCSV struct {
	Dir     string
	Fields  []api.Field
	Reducer series.Reducer
}

// HandleProduct interpolates the configured fields of one product and
// writes one file per field. Fields without history are skipped.
func (d *DailyCSV) HandleProduct(p api.Product) error {
	for _, field := range d.Fields {
		raw := p.FieldHistory(field)
		if len(raw) == 0 {
			continue
		}

		daily := series.Interpolate(series.Format(raw, 0), d.Reducer)
		path := filepath.Join(d.Dir, fmt.Sprintf("%s_%s.csv", p.ASIN, field))
		if err := WriteDaily(path, daily); err != nil {
			return fmt.Errorf("export %s %s: %w", p.ASIN, field, err)
		}
	}
	return nil
}
