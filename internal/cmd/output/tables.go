package output

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/reconcile"
	"github.com/clanhall/rostermap/pkg/roster"
)

var titler = cases.Title(language.English)

// MatchedToTableData renders a matched mapping, sorted by RSN.
func MatchedToTableData(matched map[string]match.Record) Data {
	data := Data{Headers: []string{"RSN", "Discord User", "Nickname", "Match", "Rank"}}
	for _, rsn := range reconcile.SortedRSNs(matched) {
		rec := matched[rsn]
		matchLabel := formatMatchType(rec.Type)
		if rec.Ambiguous {
			matchLabel += " (ambiguous)"
		}
		data.Rows = append(data.Rows, []string{
			rec.RSN, rec.DiscordUser, rec.Nickname, matchLabel, rec.Rank,
		})
	}
	return data
}

// UnmatchedToTableData renders unmatched or excluded Discord members.
func UnmatchedToTableData(members []match.UnmatchedMember) Data {
	data := Data{Headers: []string{"Discord User", "Nickname", "Status", "Reason"}}
	for _, m := range members {
		data.Rows = append(data.Rows, []string{m.DiscordUser, m.Nickname, m.Status, m.Reason})
	}
	return data
}

// UnmatchedRSNsToTableData renders roster names with no Discord account.
func UnmatchedRSNsToTableData(rsns []match.UnmatchedRSN) Data {
	data := Data{Headers: []string{"RSN", "Reason"}}
	for _, r := range rsns {
		data.Rows = append(data.Rows, []string{r.RSN, r.Reason})
	}
	return data
}

// ChangesToTableData renders a snapshot comparison as one table: renames
// first, then joins and leaves.
func ChangesToTableData(changes *reconcile.Changes) Data {
	data := Data{Headers: []string{"Change", "RSN", "Details"}}
	for _, ev := range changes.Renames {
		data.Rows = append(data.Rows, []string{
			"Renamed", ev.NewRSN, fmt.Sprintf("was %s (joined %s)", ev.OldRSN, ev.JoinedDate),
		})
	}
	for _, k := range changes.Joined {
		data.Rows = append(data.Rows, []string{"Joined", k.RSN, "joined " + k.JoinedDate})
	}
	for _, k := range changes.Left {
		data.Rows = append(data.Rows, []string{"Left", k.RSN, "joined " + k.JoinedDate})
	}
	return data
}

// RanksToTableData renders the roster rank lookup, sorted by RSN.
func RanksToTableData(ranks roster.Ranks) Data {
	data := Data{Headers: []string{"RSN", "Rank", "Joined"}}
	for _, rsn := range ranks.RSNs() {
		info := ranks[rsn]
		data.Rows = append(data.Rows, []string{rsn, info.Rank, info.JoinedDate})
	}
	return data
}

// formatMatchType turns a match type label into a display string, e.g.
// "exact_nickname" into "Exact Nickname".
func formatMatchType(t match.Type) string {
	return titler.String(strings.ReplaceAll(string(t), "_", " "))
}
