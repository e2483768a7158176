package differ

import (
	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Differ handles change detection between roster snapshots.
type Differ interface {
	// Snapshots compares two snapshots (newer, older) and returns the
	// membership changes. Neither snapshot is mutated.
	Snapshots(newer, older *roster.Snapshot) (*Changeset, error)
}

// differ is the default implementation of Differ.
type differ struct{}

// New creates a Differ.
func New() Differ {
	return &differ{}
}

// Snapshots computes joined = newer − older and left = older − newer over
// (rsn, joinedDate) pairs. Identical snapshots yield an empty changeset;
// for any two snapshots the left of one direction equals the joined of the
// other.
func (d *differ) Snapshots(newer, older *roster.Snapshot) (*Changeset, error) {
	if newer == nil || older == nil {
		have := 0
		if newer != nil || older != nil {
			have = 1
		}
		return nil, errors.NewInsufficientDataError(2, have)
	}

	newKeys := newer.Keys()
	oldKeys := older.Keys()

	joined := make([]roster.Key, 0)
	for key := range newKeys {
		if _, ok := oldKeys[key]; !ok {
			joined = append(joined, key)
		}
	}

	left := make([]roster.Key, 0)
	for key := range oldKeys {
		if _, ok := newKeys[key]; !ok {
			left = append(left, key)
		}
	}

	// Sort for consistent output
	roster.SortKeys(joined)
	roster.SortKeys(left)

	return &Changeset{
		Joined:  joined,
		Left:    left,
		Summary: calculateSummary(joined, left),
	}, nil
}
