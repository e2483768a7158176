package differ_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanhall/rostermap/pkg/differ"
	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/roster"
)

func snapshot(entries ...roster.Entry) *roster.Snapshot {
	return &roster.Snapshot{Entries: entries}
}

func TestIdentity(t *testing.T) {
	d := differ.New()

	s := snapshot(
		roster.Entry{RSN: "Zezima", JoinedDate: "2019-04-01"},
		roster.Entry{RSN: "Durial321", JoinedDate: "2021-06-06"},
	)

	changes, err := d.Snapshots(s, s)
	require.NoError(t, err)
	assert.Empty(t, changes.Joined)
	assert.Empty(t, changes.Left)
	assert.True(t, changes.IsEmpty())
	assert.Equal(t, "No roster changes detected", changes.String())
}

func TestJoinedAndLeft(t *testing.T) {
	d := differ.New()

	older := snapshot(
		roster.Entry{RSN: "Zezima", JoinedDate: "2019-04-01"},
		roster.Entry{RSN: "Leaver", JoinedDate: "2020-01-01"},
	)
	newer := snapshot(
		roster.Entry{RSN: "Zezima", JoinedDate: "2019-04-01"},
		roster.Entry{RSN: "Newbie", JoinedDate: "2024-12-01"},
	)

	changes, err := d.Snapshots(newer, older)
	require.NoError(t, err)
	assert.Equal(t, []roster.Key{{RSN: "Newbie", JoinedDate: "2024-12-01"}}, changes.Joined)
	assert.Equal(t, []roster.Key{{RSN: "Leaver", JoinedDate: "2020-01-01"}}, changes.Left)
	assert.True(t, changes.HasChanges())
	assert.Equal(t, 2, changes.Summary.TotalChanges)
}

func TestRenameSurfacesAsPairedChange(t *testing.T) {
	d := differ.New()

	// Same joined date, different RSN: membership key comparison makes a
	// rename visible as one joined plus one left.
	older := snapshot(roster.Entry{RSN: "OldName", JoinedDate: "2021-01-01"})
	newer := snapshot(roster.Entry{RSN: "NewName", JoinedDate: "2021-01-01"})

	changes, err := d.Snapshots(newer, older)
	require.NoError(t, err)
	assert.Equal(t, []roster.Key{{RSN: "NewName", JoinedDate: "2021-01-01"}}, changes.Joined)
	assert.Equal(t, []roster.Key{{RSN: "OldName", JoinedDate: "2021-01-01"}}, changes.Left)
}

func TestRejoinIsBothJoinedAndLeft(t *testing.T) {
	d := differ.New()

	// A true leave/rejoin gets a fresh joined date, so the same RSN shows
	// up on both sides with different dates.
	older := snapshot(roster.Entry{RSN: "Zezima", JoinedDate: "2019-04-01"})
	newer := snapshot(roster.Entry{RSN: "Zezima", JoinedDate: "2024-08-01"})

	changes, err := d.Snapshots(newer, older)
	require.NoError(t, err)
	assert.Len(t, changes.Joined, 1)
	assert.Len(t, changes.Left, 1)
}

func TestSymmetry(t *testing.T) {
	d := differ.New()

	s1 := snapshot(
		roster.Entry{RSN: "A", JoinedDate: "1"},
		roster.Entry{RSN: "B", JoinedDate: "2"},
		roster.Entry{RSN: "C", JoinedDate: "3"},
	)
	s2 := snapshot(
		roster.Entry{RSN: "B", JoinedDate: "2"},
		roster.Entry{RSN: "D", JoinedDate: "4"},
	)

	forward, err := d.Snapshots(s1, s2)
	require.NoError(t, err)
	backward, err := d.Snapshots(s2, s1)
	require.NoError(t, err)

	assert.Equal(t, forward.Left, backward.Joined)
	assert.Equal(t, forward.Joined, backward.Left)
}

func TestEntriesMissingKeyFieldsSkipped(t *testing.T) {
	d := differ.New()

	older := snapshot(roster.Entry{RSN: "", JoinedDate: "2020-01-01"})
	newer := snapshot(roster.Entry{RSN: "Ghost", JoinedDate: ""})

	changes, err := d.Snapshots(newer, older)
	require.NoError(t, err)
	assert.True(t, changes.IsEmpty())
}

func TestMissingSnapshotIsInsufficientData(t *testing.T) {
	d := differ.New()

	_, err := d.Snapshots(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientData(err))

	_, err = d.Snapshots(snapshot(), nil)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientData(err))
}

func TestDeterministicOrdering(t *testing.T) {
	d := differ.New()

	older := snapshot()
	newer := snapshot(
		roster.Entry{RSN: "Charlie", JoinedDate: "3"},
		roster.Entry{RSN: "Alice", JoinedDate: "1"},
		roster.Entry{RSN: "Bravo", JoinedDate: "2"},
	)

	changes, err := d.Snapshots(newer, older)
	require.NoError(t, err)
	assert.Equal(t, []roster.Key{
		{RSN: "Alice", JoinedDate: "1"},
		{RSN: "Bravo", JoinedDate: "2"},
		{RSN: "Charlie", JoinedDate: "3"},
	}, changes.Joined)
}
