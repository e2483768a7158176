package discord

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/clanhall/rostermap/pkg/errors"
)

// Well-known columns in the member export. Every other column is treated as
// a role flag: a non-empty cell means the member holds that role.
const (
	columnID          = "ID"
	columnUser        = "User"
	columnNickname    = "Nickname"
	columnDisplayName = "Display Name"
)

// LoadMembers reads a Discord member export CSV from path.
func LoadMembers(path string) ([]Member, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	members, err := ParseMembers(f)
	if err != nil {
		return nil, errors.WrapParse("csv", path, err)
	}
	return members, nil
}

// ParseMembers reads a member export CSV from r. The first row is the
// header; member order follows row order, which downstream matching relies
// on for deterministic results.
func ParseMembers(r io.Reader) ([]Member, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports are ragged when trailing roles are empty

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var members []Member
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var m Member
		for i, cell := range row {
			if i >= len(header) {
				break
			}
			cell = strings.TrimSpace(cell)
			switch header[i] {
			case columnID:
				m.ID = cell
			case columnUser:
				m.Username = cell
			case columnNickname:
				m.Nickname = cell
			case columnDisplayName:
				m.DisplayName = cell
			default:
				if cell != "" {
					m.Roles = append(m.Roles, header[i])
				}
			}
		}
		members = append(members, m)
	}

	return members, nil
}
