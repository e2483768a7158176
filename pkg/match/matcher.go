package match

import (
	"strings"

	"github.com/clanhall/rostermap/internal/roleset"
	"github.com/clanhall/rostermap/pkg/discord"
	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Matching defaults. The excluded roles are the bot-utility and guest roles
// the clan's Discord server is known to carry.
const (
	DefaultThreshold = 0.85
	DefaultStripMin  = 2
	DefaultStripMax  = 4
)

// DefaultExcludedRoles returns the default role-exclusion set.
func DefaultExcludedRoles() []string {
	return []string{"EasyPoll", "MemberList", "Clan Guest", "Memberlist2.0"}
}

// Matcher links roster names to Discord members.
type Matcher interface {
	// Match runs the full priority chain over the given members, in the
	// order supplied. Inputs are not mutated.
	Match(entries []roster.Entry, members []discord.Member, overrides Overrides) *Report
}

// matcher is the default implementation of Matcher.
type matcher struct {
	threshold float64
	stripMin  int
	stripMax  int
	excluded  *roleset.Set
}

// Option configures a Matcher.
type Option func(*matcher) error

// WithThreshold sets the similarity threshold for the fuzzy fallback.
func WithThreshold(threshold float64) Option {
	return func(m *matcher) error {
		if threshold < 0 || threshold > 1 {
			return errors.NewValidationError("threshold", threshold, "must be between 0 and 1")
		}
		m.threshold = threshold
		return nil
	}
}

// WithExcludedRoles replaces the role-exclusion set. Entries may be plain
// role names or glob patterns.
func WithExcludedRoles(roles ...string) Option {
	return func(m *matcher) error {
		set, err := roleset.New(roles...)
		if err != nil {
			return errors.NewConfigError("matcher", "excluded roles", err)
		}
		m.excluded = set
		return nil
	}
}

// WithStripDigitsWindow sets the length window for the trailing-digit strip
// applied to usernames before normalization.
func WithStripDigitsWindow(min, max int) Option {
	return func(m *matcher) error {
		if min <= 0 || max < min {
			return errors.NewValidationError("strip_digits", [2]int{min, max}, "window must satisfy 0 < min <= max")
		}
		m.stripMin, m.stripMax = min, max
		return nil
	}
}

// New creates a Matcher with the given options.
func New(opts ...Option) (Matcher, error) {
	m := &matcher{
		threshold: DefaultThreshold,
		stripMin:  DefaultStripMin,
		stripMax:  DefaultStripMax,
		excluded:  roleset.MustNew(DefaultExcludedRoles()...),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// candidateField is one of a member's name fields, in priority order.
type candidateField struct {
	norm     string
	exact    Type
	contains Type // normalized RSN contained in field
	reverse  Type // normalized field contained in RSN
	fuzzy    Type
}

// Match runs the priority chain. The result is a single ordered fold over
// the member slice: the matched mapping and locked-id set are threaded
// through the loop, so first-writer-wins is decided by input order alone.
func (m *matcher) Match(entries []roster.Entry, members []discord.Member, overrides Overrides) *Report {
	report := NewReport()

	// Roster names in caller order. Entries without an RSN take no part.
	rsns := make([]string, 0, len(entries))
	normByRSN := make(map[string]string, len(entries))
	exactIndex := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.RSN == "" {
			continue
		}
		rsns = append(rsns, e.RSN)
		norm := Normalize(e.RSN)
		normByRSN[e.RSN] = norm
		if norm == "" {
			continue
		}
		if _, taken := exactIndex[norm]; !taken {
			exactIndex[norm] = e.RSN
		}
	}

	// Manual overrides go in first and lock their Discord ids out of the
	// heuristic chain.
	locked := make(map[string]struct{}, len(overrides))
	for _, rsn := range overrides.RSNs() {
		o := overrides[rsn]
		report.Matched[rsn] = Record{
			RSN:         rsn,
			DiscordID:   o.DiscordID,
			DiscordUser: o.DiscordUser,
			Nickname:    o.Nickname,
			Type:        TypeManual,
		}
		if o.DiscordID != "" {
			locked[o.DiscordID] = struct{}{}
		}
	}

	for i := range members {
		member := &members[i]

		// Locked ids are spoken for by an override; they skip the role
		// check too, so an override always wins over an exclusion.
		if _, ok := locked[member.ID]; ok {
			continue
		}

		if m.excluded.MatchAny(member.Roles...) {
			report.Excluded = append(report.Excluded, UnmatchedMember{
				DiscordID:   member.ID,
				DiscordUser: member.Username,
				Nickname:    member.Nickname,
				Status:      StatusExcluded,
				Reason:      ReasonExcludedRole,
			})
			continue
		}

		candidate := m.classify(member, rsns, normByRSN, exactIndex)
		switch candidate.Kind {
		case CandidateSingle:
			if _, taken := report.Matched[candidate.RSN]; !taken {
				report.Matched[candidate.RSN] = Record{
					RSN:         candidate.RSN,
					DiscordID:   member.ID,
					DiscordUser: member.Username,
					Nickname:    member.Nickname,
					Type:        candidate.Type,
				}
			}
		case CandidateAmbiguous:
			for _, rsn := range candidate.RSNs {
				if _, taken := report.Matched[rsn]; taken {
					continue
				}
				report.Matched[rsn] = Record{
					RSN:         rsn,
					DiscordID:   member.ID,
					DiscordUser: member.Username,
					Nickname:    member.Nickname,
					Type:        candidate.Type,
					Ambiguous:   true,
				}
			}
		default:
			report.Unmatched = append(report.Unmatched, UnmatchedMember{
				DiscordID:   member.ID,
				DiscordUser: member.Username,
				Nickname:    member.Nickname,
				Status:      StatusUnmatched,
				Reason:      ReasonNoMatch,
			})
		}
	}

	// Roster names nobody claimed, in roster order.
	for _, rsn := range rsns {
		if _, ok := report.Matched[rsn]; !ok {
			report.UnmatchedRSNs = append(report.UnmatchedRSNs, UnmatchedRSN{
				RSN:    rsn,
				Status: StatusUnmatched,
				Reason: ReasonNoAccount,
			})
		}
	}

	return report
}

// classify runs the priority chain for one member. First success wins.
func (m *matcher) classify(member *discord.Member, rsns []string, normByRSN, exactIndex map[string]string) Candidate {
	fields := []candidateField{
		{
			norm:     Normalize(member.Nickname),
			exact:    TypeExactNickname,
			contains: TypeNickContainsRSN,
			reverse:  TypeRSNContainsNick,
			fuzzy:    TypeFuzzyNickname,
		},
		{
			norm:     Normalize(member.DisplayName),
			exact:    TypeExactDisplayName,
			contains: TypeDisplayContainsRSN,
			reverse:  TypeRSNContainsDisplay,
			fuzzy:    TypeFuzzyDisplayName,
		},
		{
			norm:     Normalize(StripTrailingDigits(member.Username, m.stripMin, m.stripMax)),
			exact:    TypeExactUsername,
			contains: TypeUserContainsRSN,
			reverse:  TypeRSNContainsUser,
			fuzzy:    TypeFuzzyUsername,
		},
	}

	// Priority 1-3: exact normalized equality, nickname first.
	for _, f := range fields {
		if f.norm == "" {
			continue
		}
		if rsn, ok := exactIndex[f.norm]; ok {
			return Candidate{Kind: CandidateSingle, Type: f.exact, RSN: rsn}
		}
	}

	// Priority 4: the RSN is contained in the candidate field.
	for _, f := range fields {
		if f.norm == "" {
			continue
		}
		if c := collect(rsns, normByRSN, func(norm string) bool {
			return strings.Contains(f.norm, norm)
		}); c.Kind != CandidateNone {
			c.Type = f.contains
			return c
		}
	}

	// Priority 5: the candidate field is contained in the RSN.
	for _, f := range fields {
		if f.norm == "" {
			continue
		}
		if c := collect(rsns, normByRSN, func(norm string) bool {
			return strings.Contains(norm, f.norm)
		}); c.Kind != CandidateNone {
			c.Type = f.reverse
			return c
		}
	}

	// Priority 6: similarity fallback. Single best candidate only; fuzzy
	// never produces an ambiguous multi-match.
	for _, f := range fields {
		if f.norm == "" {
			continue
		}
		best := ""
		bestScore := 0.0
		for _, rsn := range rsns {
			norm := normByRSN[rsn]
			if norm == "" {
				continue
			}
			if score := Ratio(f.norm, norm); score > bestScore {
				bestScore = score
				best = rsn
			}
		}
		if bestScore >= m.threshold {
			return Candidate{Kind: CandidateSingle, Type: f.fuzzy, RSN: best}
		}
	}

	return Candidate{Kind: CandidateNone}
}

// collect gathers every RSN whose normalized form satisfies the predicate.
func collect(rsns []string, normByRSN map[string]string, pred func(string) bool) Candidate {
	var found []string
	for _, rsn := range rsns {
		norm := normByRSN[rsn]
		if norm == "" {
			continue
		}
		if pred(norm) {
			found = append(found, rsn)
		}
	}
	switch len(found) {
	case 0:
		return Candidate{Kind: CandidateNone}
	case 1:
		return Candidate{Kind: CandidateSingle, RSN: found[0]}
	default:
		return Candidate{Kind: CandidateAmbiguous, RSNs: found}
	}
}
