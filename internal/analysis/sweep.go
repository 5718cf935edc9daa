package analysis

import (
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/damage"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

// SweepReport is the trade-off for one profile across a defense range
type SweepReport struct {
	ProfileID   string              `json:"profile_id"`
	Name        string              `json:"name"`
	Feat        string              `json:"feat,omitempty"`
	AttackBonus float64             `json:"attack_bonus"`
	HitDamage   string              `json:"hit_damage"`
	CritDamage  string              `json:"crit_damage"`
	Points      []damage.SweepPoint `json:"points"`
	Windows     []damage.Window     `json:"windows"`
}

// SweepProfile evaluates the -5/+10 trade-off for one profile at every AC
// in [from, to]. Cover is added, so points carry the effective defense. An
// empty profileID picks the first profile and a zero range means 10 to 25.
func (a *Analyzer) SweepProfile(build *entities.Build, scenario *entities.Scenario, profileID string, from, to int) (*SweepReport, error) {
	c, err := a.conditionsFor(build, scenario)
	if err != nil {
		return nil, err
	}
	if err := validateCritRanges(build); err != nil {
		return nil, err
	}
	if from == 0 && to == 0 {
		from, to = damage.DefaultSweepFrom, damage.DefaultSweepTo
	}
	if from > to {
		return nil, errors.InvalidArgumentf("sweep range %d..%d is empty", from, to)
	}

	profile, err := findProfile(build, profileID)
	if err != nil {
		return nil, err
	}

	r := a.resolve(build, scenario, *profile, c)
	in := c.tradeoffInput(r.base)
	points := damage.SweepTradeoff(in, from+scenario.Cover, to+scenario.Cover)

	return &SweepReport{
		ProfileID:   profile.ID,
		Name:        profile.Name,
		Feat:        tradeoffFeat(build, *profile),
		AttackBonus: r.base.AttackBonus,
		HitDamage:   r.base.HitDamage,
		CritDamage:  r.base.CritDamage,
		Points:      points,
		Windows:     damage.Windows(points),
	}, nil
}

func findProfile(build *entities.Build, profileID string) (*entities.AttackProfile, error) {
	if len(build.Profiles) == 0 {
		return nil, errors.FailedPreconditionf("build %s has no attack profiles", build.ID)
	}
	if profileID == "" {
		return &build.Profiles[0], nil
	}
	for i := range build.Profiles {
		if build.Profiles[i].ID == profileID {
			return &build.Profiles[i], nil
		}
	}
	return nil, errors.NotFoundf("profile %s not found", profileID).WithMeta("profile_id", profileID)
}
