package analysis

import (
	"fmt"
	"slices"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

const sneakAttack = "Sneak Attack"

// riderDamage prices each rider for one round. Riders without a once per
// turn limit add their dice on every hit, and a crit doubles the dice but
// not the modifier. Once per turn riders, Sneak Attack included, are grouped
// by name across attacks and land when at least one carrying attack hits;
// their crit doubling is not counted.
func riderDamage(build *entities.Build, attacks []resolved, outcomes []combat.AttackResult) ([]RiderReport, float64) {
	type group struct {
		rider   entities.Rider
		chances []probability.AttackChance
	}

	var (
		reports []RiderReport
		total   float64
		order   []string
		groups  = map[string]*group{}
	)

	for i, r := range attacks {
		chance := probability.AttackChance{
			HitChance:  outcomes[i].HitChance,
			CritChance: min(outcomes[i].CritRate, outcomes[i].HitChance),
		}

		riders := r.profile.Riders
		if n := build.Features.SneakAttackDice; n > 0 && isWeapon(r.profile) &&
			(r.profile.HasProperty(entities.PropertyFinesse) || r.profile.HasProperty(entities.PropertyRanged)) {
			riders = append(slices.Clone(riders), entities.Rider{
				Name:        sneakAttack,
				Dice:        fmt.Sprintf("%dd6", n),
				OncePerTurn: true,
			})
		}

		for _, rider := range riders {
			if rider.OncePerTurn {
				g, ok := groups[rider.Name]
				if !ok {
					g = &group{rider: rider}
					groups[rider.Name] = g
					order = append(order, rider.Name)
				}
				g.chances = append(g.chances, chance)
				continue
			}

			avg := notation.Evaluate(rider.Dice, false)
			critExtra := notation.Evaluate(notation.DoubleDice(rider.Dice), false) - avg
			expected := chance.HitChance*avg + chance.CritChance*critExtra
			reports = append(reports, RiderReport{
				Name:           rider.Name,
				Dice:           rider.Dice,
				Usage:          chance.HitChance,
				ExpectedDamage: expected,
			})
			total += expected
		}
	}

	for _, name := range order {
		g := groups[name]
		alloc := probability.OncePerTurnAllocation(g.chances)
		expected := alloc.AtLeastOneHit * notation.Evaluate(g.rider.Dice, false)
		reports = append(reports, RiderReport{
			Name:           name,
			Dice:           g.rider.Dice,
			OncePerTurn:    true,
			Usage:          alloc.AtLeastOneHit,
			ExpectedDamage: expected,
		})
		total += expected
	}

	return reports, total
}
