package combat_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/combat"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/damage"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
)

type AggregateTestSuite struct {
	suite.Suite
	longsword combat.Profile
	dagger    combat.Profile
	scenario  combat.Scenario
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateTestSuite))
}

func (s *AggregateTestSuite) SetupTest() {
	s.longsword = combat.Profile{
		Name:        "Longsword",
		AttackBonus: 7,
		HitDamage:   "1d8+4",
		CritDamage:  "2d8+4",
	}
	s.dagger = combat.Profile{
		Name:          "Dagger",
		AttackBonus:   6,
		HitDamage:     "1d4+3",
		CritDamage:    "2d4+3",
		CritThreshold: 19,
	}
	s.scenario = combat.Scenario{Defense: 16, Mode: probability.ModeNormal}
}

func (s *AggregateTestSuite) TestEmpty() {
	result := combat.Aggregate(nil, s.scenario)

	s.Assert().Zero(result.TotalDPR)
	s.Assert().NotNil(result.PerAttack)
	s.Assert().Empty(result.PerAttack)
	s.Assert().Equal(probability.RiderAllocation{}, result.Riders)
}

func (s *AggregateTestSuite) TestSingleProfileMatchesComposer() {
	result := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)

	s.Require().Len(result.PerAttack, 1)
	attack := result.PerAttack[0]
	s.Assert().Equal("Longsword", attack.Name)
	s.Assert().InDelta(0.6, attack.HitChance, 1e-12)
	s.Assert().InDelta(0.05, attack.CritRate, 1e-12)
	s.Assert().InDelta(5.325, attack.ExpectedDamage, 1e-9)
	s.Assert().Equal(attack.ExpectedDamage, result.TotalDPR)
}

func (s *AggregateTestSuite) TestTotalIsSumOfAttacks() {
	result := combat.Aggregate([]combat.Profile{s.longsword, s.longsword, s.dagger}, s.scenario)

	sum := 0.0
	for _, a := range result.PerAttack {
		sum += a.ExpectedDamage
	}
	s.Assert().InDelta(sum, result.TotalDPR, 1e-12)
	s.Assert().InDelta(0.10, result.PerAttack[2].CritRate, 1e-12)
}

func (s *AggregateTestSuite) TestTotalIndependentOfOrder() {
	odd := combat.Profile{Name: "Odd", AttackBonus: 3.3, HitDamage: "3d7+1", CritDamage: "6d7+1"}
	forward := combat.Aggregate([]combat.Profile{s.longsword, s.dagger, odd}, s.scenario)
	backward := combat.Aggregate([]combat.Profile{odd, s.dagger, s.longsword}, s.scenario)
	shuffled := combat.Aggregate([]combat.Profile{s.dagger, odd, s.longsword}, s.scenario)

	s.Assert().Equal(forward.TotalDPR, backward.TotalDPR)
	s.Assert().Equal(forward.TotalDPR, shuffled.TotalDPR)
	s.Assert().Equal("Longsword", forward.PerAttack[0].Name)
	s.Assert().Equal("Odd", backward.PerAttack[0].Name)
}

func (s *AggregateTestSuite) TestRidersFollowProfileOrder() {
	result := combat.Aggregate([]combat.Profile{s.longsword, s.longsword}, s.scenario)

	s.Assert().InDelta(0.05, result.Riders.FirstHitIsCrit, 1e-12)
	s.Assert().InDelta(0.84, result.Riders.AtLeastOneHit, 1e-12)
	s.Assert().InDelta(0.0975, result.Riders.AtLeastOneCrit, 1e-12)
}

func (s *AggregateTestSuite) TestAdvantageRaisesDPR() {
	normal := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)

	s.scenario.Mode = probability.ModeAdvantage
	advantage := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)

	s.Assert().Greater(advantage.TotalDPR, normal.TotalDPR)
	s.Assert().InDelta(0.0975, advantage.PerAttack[0].CritRate, 1e-12)
}

func (s *AggregateTestSuite) TestBestOfThreeOnlyWithAdvantage() {
	s.longsword.BestOfThree = true

	normal := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)
	s.Assert().InDelta(0.6, normal.PerAttack[0].HitChance, 1e-12)

	s.scenario.Mode = probability.ModeAdvantage
	elven := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)
	s.Assert().InDelta(probability.BestOfThreeHit(7, 16), elven.PerAttack[0].HitChance, 1e-12)
	s.Assert().InDelta(probability.BestOfThreeCrit(20), elven.PerAttack[0].CritRate, 1e-12)
}

func (s *AggregateTestSuite) TestModifierDie() {
	s.scenario.ModifierDie = "1d4"
	s.scenario.ModifierKind = probability.ModifierBonus

	result := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)
	s.Assert().InDelta(0.725, result.PerAttack[0].HitChance, 1e-12)
}

func (s *AggregateTestSuite) TestUnparseableDamageIsReported() {
	broken := combat.Profile{Name: "Mystery", AttackBonus: 5, HitDamage: "lots", CritDamage: "lots"}

	result := combat.Aggregate([]combat.Profile{broken, s.longsword}, s.scenario)

	s.Assert().Equal([]string{"lots"}, result.Unparseable)
	s.Assert().Zero(result.PerAttack[0].ExpectedDamage)
	s.Assert().InDelta(5.325, result.TotalDPR, 1e-9)
}

func (s *AggregateTestSuite) TestAgreesWithTradeoffBaseline() {
	tradeoff := damage.EvaluateTradeoff(damage.TradeoffInput{
		AttackBonus: s.longsword.AttackBonus,
		HitDamage:   s.longsword.HitDamage,
		CritDamage:  s.longsword.CritDamage,
		Defense:     s.scenario.Defense,
	})
	result := combat.Aggregate([]combat.Profile{s.longsword}, s.scenario)

	s.Assert().Equal(tradeoff.Baseline.ExpectedDamage, result.TotalDPR)
}

func (s *AggregateTestSuite) TestIdempotent() {
	profiles := []combat.Profile{s.longsword, s.dagger}
	s.Assert().Equal(combat.Aggregate(profiles, s.scenario), combat.Aggregate(profiles, s.scenario))
}
