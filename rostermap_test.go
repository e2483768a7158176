package rostermap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanhall/rostermap"
	"github.com/clanhall/rostermap/pkg/discord"
	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

func snapshot(entries ...roster.Entry) *roster.Snapshot {
	return &roster.Snapshot{Entries: entries}
}

func TestRunFullPipeline(t *testing.T) {
	rm, err := rostermap.New()
	require.NoError(t, err)

	current := snapshot(
		roster.Entry{RSN: "Zezima", Rank: "Owner", JoinedDate: "01-Jan-2020"},
		roster.Entry{RSN: "New Name", Rank: "Member", JoinedDate: "12-Mar-2024"},
	)
	previous := snapshot(
		roster.Entry{RSN: "Zezima", Rank: "Owner", JoinedDate: "01-Jan-2020"},
		roster.Entry{RSN: "Old Name", Rank: "Member", JoinedDate: "12-Mar-2024"},
	)
	members := []discord.Member{
		{ID: "100", Username: "zez", Nickname: "Zezima"},
	}

	result, err := rm.Run(context.Background(), rostermap.Inputs{
		Current:  current,
		Previous: previous,
		Members:  members,
	})
	require.NoError(t, err)

	rec, ok := result.Matched["Zezima"]
	require.True(t, ok)
	assert.Equal(t, match.TypeExactNickname, rec.Type)
	assert.Equal(t, "Owner", rec.Rank, "matched records carry roster metadata")

	require.Len(t, result.Renames, 1)
	assert.Equal(t, "Old Name", result.Renames[0].OldRSN)
	assert.Equal(t, "New Name", result.Renames[0].NewRSN)
	assert.Empty(t, result.Joined)
	assert.Empty(t, result.Left)
}

func TestRunWithoutPreviousSnapshot(t *testing.T) {
	rm, err := rostermap.New()
	require.NoError(t, err)

	result, err := rm.Run(context.Background(), rostermap.Inputs{
		Current: snapshot(roster.Entry{RSN: "Zezima", Rank: "Owner", JoinedDate: "01-Jan-2020"}),
	})
	require.NoError(t, err)

	assert.False(t, result.HasChanges())
	assert.Empty(t, result.Renames)
}

func TestRunRequiresCurrentSnapshot(t *testing.T) {
	rm, err := rostermap.New()
	require.NoError(t, err)

	_, err = rm.Run(context.Background(), rostermap.Inputs{})
	assert.Error(t, err)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	rm, err := rostermap.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = rm.Run(ctx, rostermap.Inputs{Current: snapshot()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFlowThroughToMatcher(t *testing.T) {
	rm, err := rostermap.New(
		rostermap.WithExcludedRoles("Visitor"),
		rostermap.WithOverrides(match.Overrides{
			"Zezima": {DiscordID: "999", DiscordUser: "manual"},
		}),
	)
	require.NoError(t, err)

	report := rm.Match(context.Background(),
		[]roster.Entry{{RSN: "Zezima"}},
		[]discord.Member{
			{ID: "100", Username: "zez", Nickname: "Zezima", Roles: []string{"Visitor"}},
		})

	rec := report.Matched["Zezima"]
	assert.Equal(t, match.TypeManual, rec.Type)
	assert.Equal(t, "999", rec.DiscordID)
	require.Len(t, report.Excluded, 1, "custom excluded role applies")
}

func TestInvalidOptionSurfacesAtNew(t *testing.T) {
	_, err := rostermap.New(rostermap.WithThreshold(2.0))
	assert.Error(t, err)
}

func TestHooksFire(t *testing.T) {
	rm, err := rostermap.New()
	require.NoError(t, err)

	var gotRenames []renames.Event
	var joined, left []roster.Key
	rm.OnRename(func(ev renames.Event) { gotRenames = append(gotRenames, ev) })
	rm.OnMemberJoined(func(k roster.Key) { joined = append(joined, k) })
	rm.OnMemberLeft(func(k roster.Key) { left = append(left, k) })

	_, err = rm.Run(context.Background(), rostermap.Inputs{
		Current: snapshot(
			roster.Entry{RSN: "Renamed", Rank: "Member", JoinedDate: "10-Oct-2021"},
			roster.Entry{RSN: "Recruit", Rank: "Member", JoinedDate: "27-Aug-2025"},
		),
		Previous: snapshot(
			roster.Entry{RSN: "Original", Rank: "Member", JoinedDate: "10-Oct-2021"},
			roster.Entry{RSN: "Quitter", Rank: "Member", JoinedDate: "14-Feb-2020"},
		),
	})
	require.NoError(t, err)

	require.Len(t, gotRenames, 1)
	assert.Equal(t, "Original", gotRenames[0].OldRSN)
	require.Len(t, joined, 1)
	assert.Equal(t, "Recruit", joined[0].RSN)
	require.Len(t, left, 1)
	assert.Equal(t, "Quitter", left[0].RSN)
}
