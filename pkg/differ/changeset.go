// Package differ provides change detection between roster snapshots.
package differ

import (
	"fmt"
	"strings"

	"github.com/clanhall/rostermap/pkg/roster"
)

// Changeset represents the membership changes between two snapshots.
// Membership is keyed by the (rsn, joinedDate) pair, not rsn alone: a
// rename therefore surfaces as one Joined and one Left entry sharing a
// joined date, which the rename correlator resolves downstream.
type Changeset struct {
	// Joined holds memberships present in the newer snapshot only.
	Joined []roster.Key `json:"joined" yaml:"joined"`

	// Left holds memberships present in the older snapshot only.
	Left []roster.Key `json:"left" yaml:"left"`

	// Summary holds the counts.
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary provides summary statistics for a changeset.
type Summary struct {
	Joined       int `json:"joined" yaml:"joined"`
	Left         int `json:"left" yaml:"left"`
	TotalChanges int `json:"total_changes" yaml:"total_changes"`
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c.Summary.TotalChanges > 0
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return c.Summary.TotalChanges == 0
}

// String returns a human-readable summary of the changeset.
func (c *Changeset) String() string {
	if c.IsEmpty() {
		return "No roster changes detected"
	}

	var parts []string
	if len(c.Joined) > 0 {
		parts = append(parts, fmt.Sprintf("%d joined", len(c.Joined)))
	}
	if len(c.Left) > 0 {
		parts = append(parts, fmt.Sprintf("%d left", len(c.Left)))
	}
	return fmt.Sprintf("Changeset: %s (Total: %d changes)", strings.Join(parts, ", "), c.Summary.TotalChanges)
}

// calculateSummary computes the summary for a changeset.
func calculateSummary(joined, left []roster.Key) Summary {
	return Summary{
		Joined:       len(joined),
		Left:         len(left),
		TotalChanges: len(joined) + len(left),
	}
}
