package logfile

import (
	"sort"
	"time"
)

// Window returns the records with start <= timestamp < end, sorted by
// timestamp. A zero start or end leaves that side open.
func (r Records) Window(start, end time.Time) Records {
	out := make(Records, 0, len(r))
	for _, rec := range r {
		if !start.IsZero() && rec.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && !rec.Timestamp.Before(end) {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
