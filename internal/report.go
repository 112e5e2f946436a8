package internal

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// lookbackDays is the rolling window of the weekday report.
const lookbackDays = 90

// weekdayNames maps weekdays to their Russian labels.
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "понедельник",
	time.Tuesday:   "вторник",
	time.Wednesday: "среда",
	time.Thursday:  "четверг",
	time.Friday:    "пятница",
	time.Saturday:  "суббота",
	time.Sunday:    "воскресенье",
}

// WeekdayRow is one line of the weekday report: the average spend across
// all transactions paid on one calendar day.
type WeekdayRow struct {
	Date    string  `json:"Дата платежа"`
	Weekday string  `json:"День недели"`
	Average float64 `json:"Средняя трата"`
}

// AverageSpendByWeekday computes the mean spend per payment date over the
// 90 days ending at ref (current time when ref is empty), labels each date
// with its weekday and orders the rows most recent first. The mean is
// rounded half-up to 2 places. An unparsable ref yields an empty report.
func AverageSpendByWeekday(txs []Transaction, ref string) []WeekdayRow {
	start, end, err := LookbackWindow(ref, lookbackDays)
	if err != nil {
		return nil
	}

	type group struct {
		sum decimal.Decimal
		n   int64
		day time.Time
	}
	byDay := make(map[string]*group)
	for _, tx := range FilterByDateWindow(txs, start, end) {
		d, ok := tx.PaymentTime()
		if !ok {
			continue
		}
		key := d.Format("2006-01-02")
		g := byDay[key]
		if g == nil {
			g = &group{day: d}
			byDay[key] = g
		}
		g.sum = g.sum.Add(tx.Amount)
		g.n++
	}

	rows := make([]WeekdayRow, 0, len(byDay))
	for key, g := range byDay {
		mean := g.sum.Div(decimal.NewFromInt(g.n)).Round(2)
		rows = append(rows, WeekdayRow{
			Date:    key,
			Weekday: weekdayNames[g.day.Weekday()],
			Average: mean.InexactFloat64(),
		})
	}
	// ISO date strings sort chronologically
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})
	return rows
}

// WriteJSONL writes the weekday report one JSON object per line, in the
// order the rows were produced.
func WriteJSONL(w io.Writer, rows []WeekdayRow) error {
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
