package reconcile

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/clanhall/rostermap/pkg/errors"
	"github.com/clanhall/rostermap/pkg/match"
	"github.com/clanhall/rostermap/pkg/renames"
	"github.com/clanhall/rostermap/pkg/roster"
)

// Output file names. Downstream tooling keys on these, so they are part of
// the interface.
const (
	MatchedFile        = "matched_members.json"
	UnmatchedFile      = "unmatched_members.json"
	UnmatchedRSNFile   = "unmatched_rsn.json"
	ExcludedFile       = "excluded_members.json"
	ChangesFile        = "latest_rsn_changes.json"
	UpdatedMatchedFile = "updated_matched_members.json"
)

// Changes is the persisted shape of a snapshot comparison.
type Changes struct {
	Renames []renames.Event `json:"renames" yaml:"renames"`
	Joined  []roster.Key    `json:"joined" yaml:"joined"`
	Left    []roster.Key    `json:"left" yaml:"left"`
}

// Save writes the result's collections under dir, one JSON file per
// collection. The directory is created if needed. Files are rewritten
// whole; a partial run never leaves a truncated file behind a fresh one.
func Save(dir string, result *Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	files := []struct {
		name string
		data any
	}{
		{MatchedFile, result.Matched},
		{UnmatchedFile, result.Unmatched},
		{UnmatchedRSNFile, result.UnmatchedRSNs},
		{ExcludedFile, result.Excluded},
		{ChangesFile, Changes{Renames: result.Renames, Joined: result.Joined, Left: result.Left}},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(dir, f.name), f.data); err != nil {
			return err
		}
	}
	return nil
}

// SaveChanges writes only the snapshot comparison under dir, leaving any
// previously saved match results alone.
func SaveChanges(dir string, changes *Changes) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return writeJSON(filepath.Join(dir, ChangesFile), changes)
}

// SaveUpdated writes a rename-folded matched mapping under dir.
func SaveUpdated(dir string, matched map[string]match.Record) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapIO("create", dir, err)
	}
	return writeJSON(filepath.Join(dir, UpdatedMatchedFile), matched)
}

// LoadMatched reads a matched mapping previously written by Save or
// SaveUpdated.
func LoadMatched(path string) (map[string]match.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var matched map[string]match.Record
	if err := json.Unmarshal(data, &matched); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return matched, nil
}

// LoadChanges reads a snapshot comparison previously written by Save.
func LoadChanges(path string) (*Changes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	var changes Changes
	if err := json.Unmarshal(data, &changes); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &changes, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	data = append(data, '\n')

	// Write to a sibling temp file and rename, so readers never observe a
	// half-written file.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return errors.WrapIO("write", path, err)
	}
	return nil
}
