// Package roleset provides a compiled set of role names used to exclude
// Discord members from matching. Role entries are matched exactly, or as
// shell-style glob patterns when they contain glob metacharacters, so a
// configuration like "Memberlist*" covers versioned bot roles.
package roleset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Set matches member roles against a configured exclusion list.
type Set struct {
	exact map[string]struct{}
	globs []string
}

// New compiles a role set from the given entries. Matching is
// case-insensitive.
func New(roles ...string) (*Set, error) {
	s := &Set{exact: make(map[string]struct{}, len(roles))}
	for _, role := range roles {
		role = strings.ToLower(strings.TrimSpace(role))
		if role == "" {
			continue
		}
		if isGlobPattern(role) {
			// Validate the pattern up front so Match never errors
			if _, err := filepath.Match(role, ""); err != nil {
				return nil, fmt.Errorf("invalid role pattern %q: %w", role, err)
			}
			s.globs = append(s.globs, role)
			continue
		}
		s.exact[role] = struct{}{}
	}
	return s, nil
}

// MustNew compiles a role set and panics on an invalid pattern.
func MustNew(roles ...string) *Set {
	s, err := New(roles...)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether the single role is in the set.
func (s *Set) Match(role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	if _, ok := s.exact[role]; ok {
		return true
	}
	for _, pattern := range s.globs {
		if matched, _ := filepath.Match(pattern, role); matched {
			return true
		}
	}
	return false
}

// MatchAny reports whether any of the roles is in the set.
func (s *Set) MatchAny(roles ...string) bool {
	for _, role := range roles {
		if s.Match(role) {
			return true
		}
	}
	return false
}

// Len returns the number of compiled entries.
func (s *Set) Len() int {
	return len(s.exact) + len(s.globs)
}

// isGlobPattern checks if a string contains glob metacharacters.
func isGlobPattern(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[]")
}
