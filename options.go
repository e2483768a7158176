package rostermap

import (
	"github.com/rs/zerolog"

	"github.com/clanhall/rostermap/pkg/match"
)

// config holds the assembled option state.
type config struct {
	threshold     float64
	excludedRoles []string
	stripMin      int
	stripMax      int
	overrides     match.Overrides
	logger        *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		threshold:     match.DefaultThreshold,
		excludedRoles: match.DefaultExcludedRoles(),
		stripMin:      match.DefaultStripMin,
		stripMax:      match.DefaultStripMax,
	}
}

// matchOptions translates the config into matcher options.
func (c *config) matchOptions() []match.Option {
	return []match.Option{
		match.WithThreshold(c.threshold),
		match.WithExcludedRoles(c.excludedRoles...),
		match.WithStripDigitsWindow(c.stripMin, c.stripMax),
	}
}

// Option is a function that configures a Rostermap instance.
type Option func(*config) error

// WithThreshold sets the similarity threshold for the fuzzy match fallback.
func WithThreshold(threshold float64) Option {
	return func(c *config) error {
		c.threshold = threshold
		return nil
	}
}

// WithExcludedRoles replaces the set of Discord roles whose holders are
// excluded from matching. Glob patterns are allowed.
func WithExcludedRoles(roles ...string) Option {
	return func(c *config) error {
		c.excludedRoles = roles
		return nil
	}
}

// WithStripDigitsWindow sets the length window for the trailing-digit strip
// applied to usernames.
func WithStripDigitsWindow(min, max int) Option {
	return func(c *config) error {
		c.stripMin, c.stripMax = min, max
		return nil
	}
}

// WithOverrides supplies operator-curated manual matches. Overridden RSNs
// bypass the heuristic chain entirely.
func WithOverrides(overrides match.Overrides) Option {
	return func(c *config) error {
		c.overrides = overrides
		return nil
	}
}

// WithLogger sets the logger used during runs.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
