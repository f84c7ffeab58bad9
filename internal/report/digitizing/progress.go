package digitizing

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"atelier/internal/domain"
)

const (
	dayKeyLayout = "Jan-02"
	// dateKey is reserved in each row, so an uploader with that name is
	// left out of the columns.
	dateKey = "date"
)

// DailyProgress is one row per day of a month with upload counts per
// uploader. Uploaders is the fixed, alphabetical column set.
type DailyProgress struct {
	Uploaders []string           `json:"uploaders"`
	Rows      []DailyProgressRow `json:"rows"`
}

type DailyProgressRow struct {
	Date   string
	Counts map[string]int
}

// MarshalJSON writes {"date": "Mar-01", "<uploader>": n, ...} with the
// uploaders in alphabetical order.
func (r DailyProgressRow) MarshalJSON() ([]byte, error) {
	names := make([]string, 0, len(r.Counts))
	for name := range r.Counts {
		if name == dateKey {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString(`{"date":`)
	date, err := json.Marshal(r.Date)
	if err != nil {
		return nil, err
	}
	buf.Write(date)

	for _, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(r.Counts[name]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DailyProgress counts uploads per uploader for each day of year/month.
// Every lead is scanned, not only the programming queue. Uploads with an
// unparseable time are skipped.
func (a *Aggregator) DailyProgress(leads []domain.Lead, year int, month time.Month) DailyProgress {
	var uploads []domain.Upload
	for _, l := range leads {
		for _, layout := range l.Layouts {
			uploads = append(uploads, layout.Uploads()...)
		}
	}

	seen := make(map[string]struct{})
	uploaders := []string{}
	for _, u := range uploads {
		if _, ok := seen[u.UploadedBy]; ok || u.UploadedBy == dateKey {
			continue
		}
		seen[u.UploadedBy] = struct{}{}
		uploaders = append(uploaders, u.UploadedBy)
	}
	sort.Strings(uploaders)

	perDay := make(map[string]map[string]int)
	for _, u := range uploads {
		t, err := domain.ParseTimestamp(u.UploadTime, a.loc)
		if err != nil {
			continue
		}
		t = t.In(a.loc)
		if t.Year() != year || t.Month() != month {
			continue
		}
		key := t.Format(dayKeyLayout)
		if perDay[key] == nil {
			perDay[key] = make(map[string]int)
		}
		perDay[key][u.UploadedBy]++
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, a.loc)
	rows := []DailyProgressRow{}
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyLayout)
		counts := make(map[string]int, len(uploaders))
		for _, name := range uploaders {
			counts[name] = perDay[key][name]
		}
		rows = append(rows, DailyProgressRow{Date: key, Counts: counts})
	}

	return DailyProgress{Uploaders: uploaders, Rows: rows}
}
