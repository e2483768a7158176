package discord_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanhall/rostermap/pkg/discord"
)

func TestParseMembers(t *testing.T) {
	csvData := `ID,User,Nickname,Display Name,EasyPoll,Clan Guest
100,zezima_07,Zezima,Zez,,
101,bot_helper,,Bot Helper,x,
102,guestuser,,,,yes
`

	members, err := discord.ParseMembers(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, discord.Member{
		ID:          "100",
		Username:    "zezima_07",
		Nickname:    "Zezima",
		DisplayName: "Zez",
	}, members[0])

	assert.Equal(t, []string{"EasyPoll"}, members[1].Roles)
	assert.True(t, members[1].HasRole("EasyPoll"))
	assert.False(t, members[1].HasRole("Clan Guest"))

	assert.Equal(t, []string{"Clan Guest"}, members[2].Roles)
}

func TestParseMembersRaggedRows(t *testing.T) {
	// Exports drop trailing empty columns on some rows.
	csvData := "ID,User,Nickname,MemberList\n100,alice,Al\n101,bob,,x\n"

	members, err := discord.ParseMembers(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Empty(t, members[0].Roles)
	assert.Equal(t, []string{"MemberList"}, members[1].Roles)
}

func TestParseMembersEmptyInput(t *testing.T) {
	_, err := discord.ParseMembers(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseMembersPreservesOrder(t *testing.T) {
	csvData := "ID,User,Nickname\n3,c,\n1,a,\n2,b,\n"

	members, err := discord.ParseMembers(strings.NewReader(csvData))
	require.NoError(t, err)

	ids := []string{members[0].ID, members[1].ID, members[2].ID}
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}
