package models

import "slices"

// JuryCap is the maximum number of jurors
const JuryCap = 9

// IsEliminated reports whether the name has been voted out
func (g *GameState) IsEliminated(name string) bool {
	return slices.Contains(g.Eliminated, name)
}

// Eliminate removes the name from whichever tribe holds it and records it as
// eliminated. Post-merge eliminations join the jury until it is full.
// Eliminating the same name twice is a no-op.
func (g *GameState) Eliminate(name string) {
	if name == "" || g.IsEliminated(name) {
		return
	}
	g.Eliminated = append(g.Eliminated, name)
	g.Tribes.Tribe1 = remove(g.Tribes.Tribe1, name)
	g.Tribes.Tribe2 = remove(g.Tribes.Tribe2, name)

	if g.Merged && len(g.Jury) < JuryCap {
		g.Jury = append(g.Jury, name)
	}
}

// Active returns every contestant still in the game, player included
func (g *GameState) Active() []string {
	active := make([]string, 0, len(g.Tribes.Tribe1)+len(g.Tribes.Tribe2))
	for _, name := range g.Tribes.Tribe1 {
		if !g.IsEliminated(name) {
			active = append(active, name)
		}
	}
	for _, name := range g.Tribes.Tribe2 {
		if !g.IsEliminated(name) {
			active = append(active, name)
		}
	}
	return active
}

// ActiveNonPlayer returns the all-stars still in the game
func (g *GameState) ActiveNonPlayer() []string {
	return slices.DeleteFunc(g.Active(), func(name string) bool {
		return name == g.PlayerName
	})
}

// Tribemates returns the player's tribe without the player before the merge,
// and every active all-star after it.
func (g *GameState) Tribemates() []string {
	if g.Merged {
		return g.ActiveNonPlayer()
	}
	mates := make([]string, 0, len(g.Tribes.Tribe1))
	for _, name := range g.Tribes.Tribe1 {
		if name != g.PlayerName && !g.IsEliminated(name) {
			mates = append(mates, name)
		}
	}
	return mates
}

// OpposingMembers returns the active members of the opposing tribe
func (g *GameState) OpposingMembers() []string {
	members := make([]string, 0, len(g.Tribes.Tribe2))
	for _, name := range g.Tribes.Tribe2 {
		if !g.IsEliminated(name) {
			members = append(members, name)
		}
	}
	return members
}

func remove(names []string, name string) []string {
	return slices.DeleteFunc(names, func(n string) bool {
		return n == name
	})
}
