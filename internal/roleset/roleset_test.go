package roleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanhall/rostermap/internal/roleset"
)

func TestExactMatching(t *testing.T) {
	s := roleset.MustNew("EasyPoll", "MemberList", "Clan Guest")

	assert.True(t, s.Match("EasyPoll"))
	assert.True(t, s.Match("easypoll"), "matching is case-insensitive")
	assert.True(t, s.Match(" Clan Guest "), "whitespace is trimmed")
	assert.False(t, s.Match("Moderator"))
}

func TestGlobMatching(t *testing.T) {
	s := roleset.MustNew("memberlist*")

	assert.True(t, s.Match("MemberList"))
	assert.True(t, s.Match("Memberlist2.0"))
	assert.False(t, s.Match("The MemberList"))
}

func TestMatchAny(t *testing.T) {
	s := roleset.MustNew("EasyPoll")

	assert.True(t, s.MatchAny("Moderator", "EasyPoll"))
	assert.False(t, s.MatchAny("Moderator", "Clan Guest"))
	assert.False(t, s.MatchAny())
}

func TestInvalidPattern(t *testing.T) {
	_, err := roleset.New("broken[")
	require.Error(t, err)

	assert.Panics(t, func() { roleset.MustNew("broken[") })
}

func TestEmptyEntriesIgnored(t *testing.T) {
	s := roleset.MustNew("", "  ", "EasyPoll")
	assert.Equal(t, 1, s.Len())
}
