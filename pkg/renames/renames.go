// Package renames reclassifies apparent departure/arrival pairs across two
// roster snapshots as display-name changes. The joined date is the
// correlation key: the upstream exporter preserves it across a rename but
// assigns a fresh one on a genuine leave/rejoin.
package renames

import (
	"sort"

	"github.com/clanhall/rostermap/pkg/roster"
)

// Event asserts that OldRSN and NewRSN denote the same membership. It is
// only meaningful between two snapshots of the same roster.
type Event struct {
	OldRSN     string `json:"old_rsn" yaml:"old_rsn"`
	NewRSN     string `json:"new_rsn" yaml:"new_rsn"`
	JoinedDate string `json:"joinedDate" yaml:"joinedDate"`
}

// Result carries the detected renames along with the joined/left lists with
// every resolved entry removed.
type Result struct {
	Events []Event      `json:"renames" yaml:"renames"`
	Joined []roster.Key `json:"joined" yaml:"joined"`
	Left   []roster.Key `json:"left" yaml:"left"`
}

// Correlate detects renames among the differ's joined/left output.
//
// Entries are bucketed by joined date. A date present on both sides
// resolves to a rename only when exactly one RSN appears on each side; any
// other cardinality is left alone, since choosing among multiple
// simultaneous events sharing a coincidental date would be a guess. The
// unresolved entries stay in Joined/Left for a human to review.
func Correlate(joined, left []roster.Key) *Result {
	joinedByDate := bucketByDate(joined)
	leftByDate := bucketByDate(left)

	resolved := make(map[string]struct{})
	var events []Event
	for date, arrivals := range joinedByDate {
		departures, ok := leftByDate[date]
		if !ok {
			continue
		}
		if len(arrivals) != 1 || len(departures) != 1 {
			continue
		}
		events = append(events, Event{
			OldRSN:     departures[0],
			NewRSN:     arrivals[0],
			JoinedDate: date,
		})
		resolved[date] = struct{}{}
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].JoinedDate != events[j].JoinedDate {
			return events[i].JoinedDate < events[j].JoinedDate
		}
		return events[i].OldRSN < events[j].OldRSN
	})

	return &Result{
		Events: events,
		Joined: withoutResolved(joined, resolved),
		Left:   withoutResolved(left, resolved),
	}
}

// bucketByDate indexes keys by joined date, preserving input order within a
// bucket.
func bucketByDate(keys []roster.Key) map[string][]string {
	buckets := make(map[string][]string)
	for _, k := range keys {
		buckets[k.JoinedDate] = append(buckets[k.JoinedDate], k.RSN)
	}
	return buckets
}

// withoutResolved filters out entries whose date produced a rename.
func withoutResolved(keys []roster.Key, resolved map[string]struct{}) []roster.Key {
	clean := make([]roster.Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := resolved[k.JoinedDate]; ok {
			continue
		}
		clean = append(clean, k)
	}
	return clean
}
