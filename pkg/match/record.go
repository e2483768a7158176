// Package match implements the cross-namespace matcher: it links clan
// roster names (RSNs) to Discord members using a priority-ordered chain of
// normalization, exact, containment, and similarity heuristics, honoring
// operator-supplied manual overrides and role-based exclusions.
package match

// Type labels which heuristic produced a match. The labels are normative:
// they are persisted in match output and referenced by operators when
// deciding whether a heuristic match needs a manual override.
type Type string

const (
	// TypeManual marks an operator-supplied override.
	TypeManual Type = "manual"

	// Exact normalized equality per candidate field.
	TypeExactNickname    Type = "exact_nickname"
	TypeExactDisplayName Type = "exact_display_name"
	TypeExactUsername    Type = "exact_username"

	// The normalized RSN is contained in the candidate field.
	TypeNickContainsRSN    Type = "nick_contains_rsn"
	TypeDisplayContainsRSN Type = "display_contains_rsn"
	TypeUserContainsRSN    Type = "user_contains_rsn"

	// The normalized candidate field is contained in the RSN.
	TypeRSNContainsNick    Type = "rsn_contains_nick"
	TypeRSNContainsDisplay Type = "rsn_contains_display"
	TypeRSNContainsUser    Type = "rsn_contains_user"

	// Similarity fallback per candidate field.
	TypeFuzzyNickname    Type = "fuzzy_nickname"
	TypeFuzzyDisplayName Type = "fuzzy_display_name"
	TypeFuzzyUsername    Type = "fuzzy_username"
)

// Statuses and reasons reported for members and RSNs left out of the
// matched mapping.
const (
	StatusUnmatched = "unmatched"
	StatusExcluded  = "excluded"

	ReasonNoMatch      = "no match"
	ReasonNoAccount    = "no matching Discord account"
	ReasonExcludedRole = "has excluded role"
)

// Record is the per-RSN match result. Rank and JoinedDate are filled in by
// the aggregator from the current roster; the matcher leaves them empty.
type Record struct {
	RSN         string `json:"rsn" yaml:"rsn"`
	DiscordID   string `json:"discord_id" yaml:"discord_id"`
	DiscordUser string `json:"discord_user" yaml:"discord_user"`
	Nickname    string `json:"nickname" yaml:"nickname"`
	Type        Type   `json:"match_type" yaml:"match_type"`
	Ambiguous   bool   `json:"ambiguous" yaml:"ambiguous"`
	Rank        string `json:"rank,omitempty" yaml:"rank,omitempty"`
	JoinedDate  string `json:"joinedDate,omitempty" yaml:"joinedDate,omitempty"`
}

// UnmatchedMember reports a Discord member that produced no match, or was
// excluded before matching.
type UnmatchedMember struct {
	DiscordID   string `json:"discord_id" yaml:"discord_id"`
	DiscordUser string `json:"discord_user" yaml:"discord_user"`
	Nickname    string `json:"nickname" yaml:"nickname"`
	Status      string `json:"status" yaml:"status"`
	Reason      string `json:"reason" yaml:"reason"`
}

// UnmatchedRSN reports a roster name with no matching Discord account.
type UnmatchedRSN struct {
	RSN    string `json:"rsn" yaml:"rsn"`
	Status string `json:"status" yaml:"status"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report is the matcher's complete output. All four collections are
// disjoint over Discord ids: a member appears as matched, unmatched, or
// excluded, never in more than one.
type Report struct {
	Matched       map[string]Record `json:"matched" yaml:"matched"`
	Unmatched     []UnmatchedMember `json:"unmatched" yaml:"unmatched"`
	UnmatchedRSNs []UnmatchedRSN    `json:"unmatched_rsns" yaml:"unmatched_rsns"`
	Excluded      []UnmatchedMember `json:"excluded" yaml:"excluded"`
}

// NewReport returns an empty report with initialized collections.
func NewReport() *Report {
	return &Report{
		Matched:       make(map[string]Record),
		Unmatched:     []UnmatchedMember{},
		UnmatchedRSNs: []UnmatchedRSN{},
		Excluded:      []UnmatchedMember{},
	}
}

// CandidateKind discriminates the matcher's per-member result variant.
type CandidateKind int

const (
	// CandidateNone means no heuristic succeeded.
	CandidateNone CandidateKind = iota
	// CandidateSingle is an unambiguous match to one RSN.
	CandidateSingle
	// CandidateAmbiguous means several RSNs qualified equally.
	CandidateAmbiguous
)

// Candidate is the tagged per-member match result: either a single RSN or
// an ambiguous set, never one field doing double duty.
type Candidate struct {
	Kind CandidateKind
	Type Type

	// RSN is set when Kind is CandidateSingle.
	RSN string

	// RSNs is set when Kind is CandidateAmbiguous.
	RSNs []string
}
