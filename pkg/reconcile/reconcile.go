package reconcile

import (
	"sort"
	"time"

	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Build assembles a Result from the matcher's report, the rank lookup, and
// the correlated snapshot changes. The report's records are copied, never
// mutated; each matched record present in ranks picks up the member's
// current rank and joined date. rn may be nil when no snapshot pair was
// available.
func Build(report *match.Report, ranks roster.Ranks, rn *renames.Result, start time.Time) *Result {
	result := &Result{
		Matched:       Enrich(report.Matched, ranks),
		Unmatched:     append([]match.UnmatchedMember{}, report.Unmatched...),
		UnmatchedRSNs: append([]match.UnmatchedRSN{}, report.UnmatchedRSNs...),
		Excluded:      append([]match.UnmatchedMember{}, report.Excluded...),
	}
	if rn != nil {
		result.Renames = append([]renames.Event{}, rn.Events...)
		result.Joined = append([]roster.Key{}, rn.Joined...)
		result.Left = append([]roster.Key{}, rn.Left...)
	}

	end := time.Now()
	result.Metadata = Metadata{
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Stats:     calculateStats(result),
	}
	return result
}

// Enrich returns a copy of the matched mapping with rank and joined date
// filled in from the roster. Records for RSNs absent from the roster (stale
// overrides, usually) are carried through untouched.
func Enrich(matched map[string]match.Record, ranks roster.Ranks) map[string]match.Record {
	enriched := make(map[string]match.Record, len(matched))
	for rsn, rec := range matched {
		if info, ok := ranks[rsn]; ok {
			rec.Rank = info.Rank
			rec.JoinedDate = info.JoinedDate
		}
		enriched[rsn] = rec
	}
	return enriched
}

// ApplyRenames folds rename events into an existing matched mapping. Each
// event whose old RSN is present with the event's joined date moves to the
// new RSN, keeping its Discord identity and match type. Events that find no
// such record are returned unapplied; the caller decides whether that is
// worth reporting.
func ApplyRenames(matched map[string]match.Record, events []renames.Event) (map[string]match.Record, []renames.Event) {
	updated := make(map[string]match.Record, len(matched))
	for rsn, rec := range matched {
		updated[rsn] = rec
	}

	var unapplied []renames.Event
	for _, ev := range events {
		rec, ok := updated[ev.OldRSN]
		if !ok || rec.JoinedDate != ev.JoinedDate {
			unapplied = append(unapplied, ev)
			continue
		}
		delete(updated, ev.OldRSN)
		rec.RSN = ev.NewRSN
		updated[ev.NewRSN] = rec
	}
	return updated, unapplied
}

// SortedRSNs returns the mapping's keys in alphabetical order, for
// deterministic iteration.
func SortedRSNs(matched map[string]match.Record) []string {
	rsns := make([]string, 0, len(matched))
	for rsn := range matched {
		rsns = append(rsns, rsn)
	}
	sort.Strings(rsns)
	return rsns
}

func calculateStats(r *Result) Stats {
	stats := Stats{
		Matched:       len(r.Matched),
		Unmatched:     len(r.Unmatched),
		UnmatchedRSNs: len(r.UnmatchedRSNs),
		Excluded:      len(r.Excluded),
		Renames:       len(r.Renames),
		Joined:        len(r.Joined),
		Left:          len(r.Left),
	}
	stats.RosterSize = len(r.Matched) + len(r.UnmatchedRSNs)
	stats.Members = len(r.Unmatched) + len(r.Excluded)
	seen := make(map[string]struct{}, len(r.Matched))
	for _, rec := range r.Matched {
		if rec.Ambiguous {
			stats.Ambiguous++
		}
		if rec.DiscordID != "" {
			if _, ok := seen[rec.DiscordID]; !ok {
				seen[rec.DiscordID] = struct{}{}
				stats.Members++
			}
		}
	}
	return stats
}
