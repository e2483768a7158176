// Package rostermap reconciles a clan's in-game roster with its Discord
// server. It matches roster names (RSNs) to Discord members through a
// priority-ordered chain of heuristics, diffs roster snapshots to find
// joins and leaves, and correlates paired changes into rename events.
package rostermap

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/clanhall/rostermap/pkg/differ"
	"github.com/clanhall/rostermap/pkg/discord"
	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/logging"
	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/reconcile"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Inputs is the raw material for a reconciliation run. Previous is
// optional; without it the run matches against Current but reports no
// roster changes.
type Inputs struct {
	Current  *roster.Snapshot
	Previous *roster.Snapshot
	Members  []discord.Member
}

// Rostermap runs roster/Discord reconciliation with event hooks.
type Rostermap interface {
	// Run executes the full pipeline: match, diff, correlate renames, and
	// assemble the result.
	Run(ctx context.Context, in Inputs) (*reconcile.Result, error)

	// Match runs only the name-matching stage.
	Match(ctx context.Context, entries []roster.Entry, members []discord.Member) *match.Report

	// OnRename registers a callback fired for each detected rename.
	OnRename(RenameHook)

	// OnMemberJoined registers a callback fired for each new roster entry.
	OnMemberJoined(MemberHook)

	// OnMemberLeft registers a callback fired for each departed entry.
	OnMemberLeft(MemberHook)
}

// rostermap is the internal implementation of the Rostermap interface.
type rostermap struct {
	config  *config
	matcher match.Matcher
	differ  differ.Differ
	hooks   *hooks
	logger  *zerolog.Logger
}

// New creates a Rostermap with the given options. Option errors surface
// here, not at Run time.
func New(opts ...Option) (Rostermap, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	m, err := match.New(c.matchOptions()...)
	if err != nil {
		return nil, err
	}

	logger := c.logger
	if logger == nil {
		logger = logging.Default()
	}

	return &rostermap{
		config:  c,
		matcher: m,
		differ:  differ.New(),
		hooks:   newHooks(),
		logger:  logger,
	}, nil
}

// Run executes the full pipeline over the given inputs.
func (r *rostermap) Run(ctx context.Context, in Inputs) (*reconcile.Result, error) {
	if in.Current == nil {
		return nil, errors.NewValidationError("current", nil, "current snapshot is required")
	}
	start := time.Now()

	report := r.Match(ctx, in.Current.Entries, in.Members)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rn *renames.Result
	if in.Previous != nil {
		changes, err := r.differ.Snapshots(in.Current, in.Previous)
		if err != nil {
			return nil, err
		}
		rn = renames.Correlate(changes.Joined, changes.Left)
		r.logger.Debug().
			Int("joined", len(rn.Joined)).
			Int("left", len(rn.Left)).
			Int("renames", len(rn.Events)).
			Msg("correlated snapshot changes")
		r.fireHooks(rn)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := reconcile.Build(report, roster.BuildRanks(in.Current), rn, start)
	r.logger.Info().
		Int("matched", result.Metadata.Stats.Matched).
		Int("unmatched", result.Metadata.Stats.Unmatched).
		Int("excluded", result.Metadata.Stats.Excluded).
		Dur("duration", result.Metadata.Duration).
		Msg("reconciliation complete")
	return result, nil
}

// Match runs only the name-matching stage with the configured overrides.
func (r *rostermap) Match(ctx context.Context, entries []roster.Entry, members []discord.Member) *match.Report {
	report := r.matcher.Match(entries, members, r.config.overrides)
	r.logger.Debug().
		Int("roster", len(entries)).
		Int("members", len(members)).
		Int("matched", len(report.Matched)).
		Msg("matcher finished")
	return report
}

func (r *rostermap) fireHooks(rn *renames.Result) {
	for _, ev := range rn.Events {
		r.hooks.fireRename(ev)
	}
	for _, k := range rn.Joined {
		r.hooks.fireJoined(k)
	}
	for _, k := range rn.Left {
		r.hooks.fireLeft(k)
	}
}
