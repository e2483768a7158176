package roster

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/clanhall/rostermap/pkg/errors"
)

// snapshotFile mirrors the upload format produced by the in-game exporter.
type snapshotFile struct {
	ClanMemberMaps []Entry `json:"clanMemberMaps"`
}

// LoadSnapshot reads a roster snapshot from an upload JSON file.
// Structurally invalid input is fatal; individual entries with missing
// optional fields are kept and filtered per operation.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	snap := &Snapshot{
		Path:    path,
		Entries: file.ClanMemberMaps,
	}

	if info, err := os.Stat(path); err == nil {
		snap.CapturedAt = info.ModTime()
	}

	return snap, nil
}

// FindSnapshots lists roster upload files in dir matching clanrank_*.json,
// newest first by modification time.
func FindSnapshots(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "clanrank_*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, errors.WrapIO("list", dir, err)
	}

	type candidate struct {
		path  string
		mtime int64
	}
	candidates := make([]candidate, 0, len(files))
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: f, mtime: info.ModTime().UnixNano()})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].mtime != candidates[j].mtime {
			return candidates[i].mtime > candidates[j].mtime
		}
		return candidates[i].path > candidates[j].path
	})

	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.path
	}
	return paths, nil
}

// LoadLatestPair loads the newest and second-newest snapshots from dir.
// Fewer than two available snapshots is reported as insufficient data,
// a recoverable condition rather than a failure.
func LoadLatestPair(dir string) (newer, older *Snapshot, err error) {
	paths, err := FindSnapshots(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) < 2 {
		return nil, nil, errors.NewInsufficientDataError(2, len(paths))
	}

	newer, err = LoadSnapshot(paths[0])
	if err != nil {
		return nil, nil, err
	}
	older, err = LoadSnapshot(paths[1])
	if err != nil {
		return nil, nil, err
	}
	return newer, older, nil
}

// LoadLatest loads only the newest snapshot from dir.
func LoadLatest(dir string) (*Snapshot, error) {
	paths, err := FindSnapshots(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.NewNotFoundError("snapshot", filepath.Join(dir, "clanrank_*.json"))
	}
	return LoadSnapshot(paths[0])
}
