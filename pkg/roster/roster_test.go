package roster_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/roster"
)

func TestSnapshotKeys(t *testing.T) {
	snap := &roster.Snapshot{
		Entries: []roster.Entry{
			{RSN: "Zezima", Rank: "Owner", JoinedDate: "2019-04-01"},
			{RSN: "Durial321", JoinedDate: "2021-06-06"},
			{RSN: "", JoinedDate: "2020-01-01"},   // no rsn
			{RSN: "Ghostless", JoinedDate: ""},    // no joined date
		},
	}

	keys := snap.Keys()
	assert.Len(t, keys, 2)
	assert.Contains(t, keys, roster.Key{RSN: "Zezima", JoinedDate: "2019-04-01"})
	assert.Contains(t, keys, roster.Key{RSN: "Durial321", JoinedDate: "2021-06-06"})
}

func TestBuildRanks(t *testing.T) {
	snap := &roster.Snapshot{
		Entries: []roster.Entry{
			{RSN: "Zezima", Rank: "Owner", JoinedDate: "2019-04-01"},
			{RSN: "Durial321", Rank: "", JoinedDate: "2021-06-06"}, // incomplete, skipped
			{RSN: "Bluerose13x", Rank: "Smith", JoinedDate: "2020-02-02"},
		},
	}

	ranks := roster.BuildRanks(snap)
	require.Len(t, ranks, 2)
	assert.Equal(t, roster.RankInfo{Rank: "Owner", JoinedDate: "2019-04-01"}, ranks["Zezima"])
	assert.Equal(t, []string{"Bluerose13x", "Zezima"}, ranks.RSNs())
}

func TestLoadSnapshot(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid upload file", func(t *testing.T) {
		path := filepath.Join(dir, "clanrank_1.json")
		payload := `{"clanMemberMaps":[{"rsn":"Zezima","rank":"Owner","joinedDate":"2019-04-01"}]}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

		snap, err := roster.LoadSnapshot(path)
		require.NoError(t, err)
		assert.Equal(t, path, snap.Path)
		require.Len(t, snap.Entries, 1)
		assert.Equal(t, "Zezima", snap.Entries[0].RSN)
		assert.False(t, snap.CapturedAt.IsZero())
	})

	t.Run("malformed input is fatal", func(t *testing.T) {
		path := filepath.Join(dir, "clanrank_bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := roster.LoadSnapshot(path)
		require.Error(t, err)
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := roster.LoadSnapshot(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestLoadLatestPair(t *testing.T) {
	dir := t.TempDir()

	write := func(name, rsn string, mtime time.Time) {
		path := filepath.Join(dir, name)
		payload := `{"clanMemberMaps":[{"rsn":"` + rsn + `","rank":"Member","joinedDate":"2021-01-01"}]}`
		require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}

	t.Run("fewer than two snapshots", func(t *testing.T) {
		write("clanrank_only.json", "Zezima", time.Now())
		_, _, err := roster.LoadLatestPair(dir)
		require.Error(t, err)
		assert.True(t, errors.IsInsufficientData(err))
	})

	t.Run("picks newest and second newest", func(t *testing.T) {
		base := time.Now().Add(-time.Hour)
		write("clanrank_old.json", "OldName", base)
		write("clanrank_new.json", "NewName", base.Add(30*time.Minute))
		write("clanrank_only.json", "Zezima", base.Add(time.Hour))

		newer, older, err := roster.LoadLatestPair(dir)
		require.NoError(t, err)
		assert.Equal(t, "Zezima", newer.Entries[0].RSN)
		assert.Equal(t, "NewName", older.Entries[0].RSN)
	})
}
