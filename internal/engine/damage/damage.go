// Package damage turns hit and crit chances into expected damage per attack
// and weighs the -5 to hit / +10 damage trade-off.
package damage

import (
	"math"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
)

// ExpectedDamagePerHit is the expected damage of one attack roll:
// (hitChance - critChance) * avg(hit) + critChance * avg(crit).
//
// critChance is capped at hitChance; every crit is also a hit.
func ExpectedDamagePerHit(hitDamage, critDamage string, hitChance, critChance float64, rerollLowFaces bool) float64 {
	critChance = math.Min(critChance, hitChance)

	nonCrit := hitChance - critChance
	return nonCrit*notation.Evaluate(hitDamage, rerollLowFaces) +
		critChance*notation.Evaluate(critDamage, rerollLowFaces)
}
