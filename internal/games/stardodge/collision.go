package stardodge

import "github.com/vovakirdan/star-dodge/internal/core"

// Sweep tests the player against every star and returns each contact in star
// order. It does not move the player or change game state.
func (g *Game) Sweep() []core.Contact {
	var contacts []core.Contact
	player := g.man.Rect()
	for i, s := range g.stars {
		if side := core.Collide(player, s.Rect()); side != core.SideNone {
			contacts = append(contacts, core.Contact{Index: i, Side: side})
		}
	}
	return contacts
}
