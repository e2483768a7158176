// Package roster provides the clan roster data model: individual member
// entries, point-in-time snapshots, and the rank lookup derived from the
// newest snapshot.
package roster

import (
	"sort"
	"time"
)

// Entry represents a single clan member in a roster snapshot.
// JoinedDate is an opaque string timestamp assigned by the upstream exporter.
// It is stable for the lifetime of a membership: it survives a display-name
// change but not a leave/rejoin, which assigns a fresh value.
type Entry struct {
	RSN        string `json:"rsn" yaml:"rsn"`
	Rank       string `json:"rank,omitempty" yaml:"rank,omitempty"`
	JoinedDate string `json:"joinedDate,omitempty" yaml:"joinedDate,omitempty"`
}

// Key identifies a membership within a snapshot. Two snapshots of the same
// roster agree on the Key of every member who neither left nor renamed.
type Key struct {
	RSN        string `json:"rsn" yaml:"rsn"`
	JoinedDate string `json:"joinedDate" yaml:"joinedDate"`
}

// Snapshot is a complete roster capture at one point in time.
type Snapshot struct {
	// CapturedAt orders snapshots; it plays no part in comparisons.
	CapturedAt time.Time `json:"capturedAt,omitempty" yaml:"capturedAt,omitempty"`

	// Path is the file this snapshot was loaded from, if any.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	Entries []Entry `json:"entries" yaml:"entries"`
}

// Keys returns the set of membership keys in the snapshot. Entries missing
// an RSN or a joined date cannot participate in snapshot comparison and are
// skipped.
func (s *Snapshot) Keys() map[Key]struct{} {
	keys := make(map[Key]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		if e.RSN == "" || e.JoinedDate == "" {
			continue
		}
		keys[Key{RSN: e.RSN, JoinedDate: e.JoinedDate}] = struct{}{}
	}
	return keys
}

// Len returns the number of entries in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Entries)
}

// RankInfo is the per-member metadata carried alongside a matched RSN.
type RankInfo struct {
	Rank       string `json:"rank" yaml:"rank"`
	JoinedDate string `json:"joinedDate" yaml:"joinedDate"`
}

// Ranks maps each RSN to its current rank and joined date.
type Ranks map[string]RankInfo

// BuildRanks derives the rank lookup from a snapshot. Entries missing any of
// rsn, rank, or joinedDate are skipped, not fatal.
func BuildRanks(s *Snapshot) Ranks {
	ranks := make(Ranks, len(s.Entries))
	for _, e := range s.Entries {
		if e.RSN == "" || e.Rank == "" || e.JoinedDate == "" {
			continue
		}
		ranks[e.RSN] = RankInfo{Rank: e.Rank, JoinedDate: e.JoinedDate}
	}
	return ranks
}

// RSNs returns the roster's display names in alphabetical order.
func (r Ranks) RSNs() []string {
	rsns := make([]string, 0, len(r))
	for rsn := range r {
		rsns = append(rsns, rsn)
	}
	sort.Strings(rsns)
	return rsns
}

// SortKeys orders membership keys by RSN, then joined date.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].RSN != keys[j].RSN {
			return keys[i].RSN < keys[j].RSN
		}
		return keys[i].JoinedDate < keys[j].JoinedDate
	})
}
