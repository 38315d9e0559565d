// SPDX-License-Identifier: MIT

package groups

import (
	"github.com/rotisserie/eris"

	"github.com/katalvlaran/drawsim/core"
)

// Draw is the externally owned state of a group draw.
//
// Pots hold the teams still awaiting placement, Groups the teams already
// placed (insertion order = draw order). Origins maps every team ID, placed
// or not, to the index of the pot it was seeded in; it is filled by NewDraw
// and kept by Place.
type Draw struct {
	Pots    [][]core.Team
	Groups  [][]core.Team
	Origins map[string]int
}

// NewDraw starts a draw with the given pots and empty groups.
func NewDraw(pots [][]core.Team, groups int) Draw {
	d := Draw{
		Pots:    make([][]core.Team, len(pots)),
		Groups:  make([][]core.Team, groups),
		Origins: make(map[string]int),
	}
	for p, pot := range pots {
		d.Pots[p] = append([]core.Team(nil), pot...)
		for _, t := range pot {
			d.Origins[t.ID] = p
		}
	}

	return d
}

// Clone returns a deep copy of d.
func (d Draw) Clone() Draw {
	out := Draw{
		Pots:    make([][]core.Team, len(d.Pots)),
		Groups:  make([][]core.Team, len(d.Groups)),
		Origins: make(map[string]int, len(d.Origins)),
	}
	for i, p := range d.Pots {
		out.Pots[i] = append([]core.Team(nil), p...)
	}
	for i, g := range d.Groups {
		out.Groups[i] = append([]core.Team(nil), g...)
	}
	for k, v := range d.Origins {
		out.Origins[k] = v
	}

	return out
}

// PotOf returns the pot currently holding the team with the given ID and its
// position in that pot, or (-1, -1).
func (d Draw) PotOf(id string) (int, int) {
	for p, pot := range d.Pots {
		for i, t := range pot {
			if t.ID == id {
				return p, i
			}
		}
	}

	return -1, -1
}

// GroupOf returns the group holding the team with the given ID, or -1.
func (d Draw) GroupOf(id string) int {
	for g, members := range d.Groups {
		for _, t := range members {
			if t.ID == id {
				return g
			}
		}
	}

	return -1
}

// Remaining counts the teams still in pots.
func (d Draw) Remaining() int {
	n := 0
	for _, p := range d.Pots {
		n += len(p)
	}

	return n
}

// Done reports whether every pot is empty.
func (d Draw) Done() bool { return d.Remaining() == 0 }

// Place returns a copy of d with team moved from its pot into group.
// It does not check legality; ask PossibleGroups first.
func (d Draw) Place(team core.Team, group int) (Draw, error) {
	if group < 0 || group >= len(d.Groups) {
		return Draw{}, eris.Wrapf(core.ErrInvalidInput, "group %d out of range [0,%d)", group, len(d.Groups))
	}
	p, i := d.PotOf(team.ID)
	if p < 0 {
		return Draw{}, eris.Wrapf(core.ErrInvalidInput, "team %q is not in any pot", team.ID)
	}
	out := d.Clone()
	out.Pots[p] = append(out.Pots[p][:i], out.Pots[p][i+1:]...)
	out.Groups[group] = append(out.Groups[group], team)
	if _, ok := out.Origins[team.ID]; !ok {
		out.Origins[team.ID] = p
	}

	return out, nil
}
