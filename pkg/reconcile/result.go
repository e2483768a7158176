// Package reconcile assembles the final reconciliation result: matched
// records enriched with roster metadata, the leftover unmatched and excluded
// sets, and the snapshot changes with renames folded in.
package reconcile

import (
	"fmt"
	"time"

	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Result is the outcome of a full reconciliation run.
type Result struct {
	// Matched maps each claimed RSN to its Discord record, enriched with
	// the member's current rank and joined date.
	Matched map[string]match.Record `json:"matched" yaml:"matched"`

	// Unmatched lists Discord members no heuristic could place.
	Unmatched []match.UnmatchedMember `json:"unmatched" yaml:"unmatched"`

	// UnmatchedRSNs lists roster names with no Discord account.
	UnmatchedRSNs []match.UnmatchedRSN `json:"unmatched_rsns" yaml:"unmatched_rsns"`

	// Excluded lists members skipped for holding an excluded role.
	Excluded []match.UnmatchedMember `json:"excluded" yaml:"excluded"`

	// Renames are the display-name changes detected between snapshots.
	Renames []renames.Event `json:"renames" yaml:"renames"`

	// Joined and Left are the snapshot changes that remained after rename
	// correlation.
	Joined []roster.Key `json:"joined" yaml:"joined"`
	Left   []roster.Key `json:"left" yaml:"left"`

	// Metadata about the run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Metadata records when the run happened and what it touched.
type Metadata struct {
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Stats     Stats         `json:"stats" yaml:"stats"`
}

// Stats counts the run's outcomes.
type Stats struct {
	RosterSize    int `json:"roster_size" yaml:"roster_size"`
	Members       int `json:"members" yaml:"members"`
	Matched       int `json:"matched" yaml:"matched"`
	Ambiguous     int `json:"ambiguous" yaml:"ambiguous"`
	Unmatched     int `json:"unmatched" yaml:"unmatched"`
	UnmatchedRSNs int `json:"unmatched_rsns" yaml:"unmatched_rsns"`
	Excluded      int `json:"excluded" yaml:"excluded"`
	Renames       int `json:"renames" yaml:"renames"`
	Joined        int `json:"joined" yaml:"joined"`
	Left          int `json:"left" yaml:"left"`
}

// HasChanges reports whether the snapshots differed at all.
func (r *Result) HasChanges() bool {
	return len(r.Renames) > 0 || len(r.Joined) > 0 || len(r.Left) > 0
}

// Summary returns a one-line human-readable summary of the run.
func (r *Result) Summary() string {
	s := r.Metadata.Stats
	if !r.HasChanges() {
		return fmt.Sprintf("Matched %d of %d roster names (%d members unmatched, %d excluded). Roster unchanged.",
			s.Matched, s.RosterSize, s.Unmatched, s.Excluded)
	}
	return fmt.Sprintf("Matched %d of %d roster names (%d members unmatched, %d excluded). Roster changes: %d renamed, %d joined, %d left.",
		s.Matched, s.RosterSize, s.Unmatched, s.Excluded, s.Renames, s.Joined, s.Left)
}

// Report returns a multi-line breakdown suitable for terminal output.
func (r *Result) Report() string {
	s := r.Metadata.Stats
	out := fmt.Sprintf("Reconciliation completed in %s\n", r.Metadata.Duration.Round(time.Millisecond))
	out += fmt.Sprintf("  Roster names:    %d\n", s.RosterSize)
	out += fmt.Sprintf("  Members:         %d\n", s.Members)
	out += fmt.Sprintf("  Matched:         %d (%d ambiguous)\n", s.Matched, s.Ambiguous)
	out += fmt.Sprintf("  Unmatched:       %d members, %d roster names\n", s.Unmatched, s.UnmatchedRSNs)
	out += fmt.Sprintf("  Excluded:        %d\n", s.Excluded)
	if r.HasChanges() {
		out += fmt.Sprintf("  Roster changes:  %d renamed, %d joined, %d left\n", s.Renames, s.Joined, s.Left)
	} else {
		out += "  Roster changes:  none\n"
	}
	return out
}
