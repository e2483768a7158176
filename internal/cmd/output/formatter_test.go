package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanhall/rostermap/internal/cmd/output"
	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/reconcile"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)

	err := f.Format(&buf, map[string]string{"rsn": "Zezima"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"rsn": "Zezima"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)

	err := f.Format(&buf, map[string]string{"rsn": "Zezima"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rsn: Zezima")
}

func TestTableFormatterRendersHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	err := f.Format(&buf, output.Data{
		Headers: []string{"RSN", "Rank"},
		Rows:    [][]string{{"Zezima", "Owner"}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "RSN")
	assert.Contains(t, out, "Zezima")
	assert.Contains(t, out, "Owner")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	err := f.Format(&buf, map[string]int{"count": 3})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"table", "json", "YAML", ""} {
		_, err := output.ParseFormat(valid)
		assert.NoError(t, err, valid)
	}

	_, err := output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestMatchedToTableDataSortedWithLabels(t *testing.T) {
	data := output.MatchedToTableData(map[string]match.Record{
		"Zezima": {RSN: "Zezima", DiscordUser: "zez", Type: match.TypeExactNickname, Rank: "Owner"},
		"Alice":  {RSN: "Alice", DiscordUser: "al", Type: match.TypeFuzzyUsername, Ambiguous: true},
	})

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Alice", data.Rows[0][0], "rows sorted by RSN")
	assert.Contains(t, data.Rows[0][3], "Fuzzy Username")
	assert.Contains(t, data.Rows[0][3], "(ambiguous)")
	assert.Equal(t, "Exact Nickname", data.Rows[1][3])
}

func TestChangesToTableData(t *testing.T) {
	data := output.ChangesToTableData(&reconcile.Changes{
		Renames: []renames.Event{{OldRSN: "Old", NewRSN: "New", JoinedDate: "01-Jan-2024"}},
		Joined:  []roster.Key{{RSN: "Recruit", JoinedDate: "27-Aug-2025"}},
		Left:    []roster.Key{{RSN: "Quitter", JoinedDate: "14-Feb-2020"}},
	})

	require.Len(t, data.Rows, 3)
	assert.Equal(t, "Renamed", data.Rows[0][0])
	assert.Contains(t, data.Rows[0][2], "was Old")
	assert.Equal(t, "Joined", data.Rows[1][0])
	assert.Equal(t, "Left", data.Rows[2][0])
}
