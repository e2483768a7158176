package match

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/clanhall/rostermap/pkg/errors"
)

// Override is a human-confirmed RSN to Discord binding. Overrides are
// installed into the matched mapping before any heuristic runs and are
// never superseded by one; the bound Discord id is withheld from automatic
// matching for the rest of the run.
type Override struct {
	DiscordID   string `json:"discord_id" yaml:"discord_id"`
	DiscordUser string `json:"discord_user" yaml:"discord_user"`
	Nickname    string `json:"nickname" yaml:"nickname"`
}

// Overrides maps RSN to its operator-supplied binding.
type Overrides map[string]Override

// RSNs returns the overridden roster names in alphabetical order.
func (o Overrides) RSNs() []string {
	rsns := make([]string, 0, len(o))
	for rsn := range o {
		rsns = append(rsns, rsn)
	}
	sort.Strings(rsns)
	return rsns
}

// LoadOverrides reads the manual match file. A missing file simply means
// no overrides; malformed content is fatal.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Overrides{}, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var overrides Overrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return overrides, nil
}
