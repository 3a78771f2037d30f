package model

import (
	"bytes"
	"encoding/json"
	"sort"
)

// NoneBucket is the sentinel group key for events with a NULL outcome or
// sentiment. It is a real key in the aggregates, never an omission.
const NoneBucket = "(none)"

// CallAnalytics is the dashboard aggregate over a trailing day window.
type CallAnalytics struct {
	OutcomeCounts   map[string]int     `json:"outcome_counts"`
	SentimentCounts map[string]int     `json:"sentiment_counts"`
	ByDay           []DayOutcomeCounts `json:"by_day"`
}

// DayOutcomeCounts holds the per-outcome call counts of one calendar date.
// Sparse: only outcomes that occurred on that date carry a key.
type DayOutcomeCounts struct {
	Date   string
	Counts map[string]int
}

// MarshalJSON flattens the bucket into {"date": d, "<outcome>": n, ...},
// outcome keys sorted for stable output.
func (d DayOutcomeCounts) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(d.Counts))
	for k := range d.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"date":`)
	date, err := json.Marshal(d.Date)
	if err != nil {
		return nil, err
	}
	buf.Write(date)
	for _, k := range keys {
		buf.WriteByte(',')
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		count, err := json.Marshal(d.Counts[k])
		if err != nil {
			return nil, err
		}
		buf.Write(count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
