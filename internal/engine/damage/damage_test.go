package damage_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/damage"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/probability"
)

type DamageTestSuite struct {
	suite.Suite
}

func TestDamageSuite(t *testing.T) {
	suite.Run(t, new(DamageTestSuite))
}

func (s *DamageTestSuite) TestExpectedDamagePerHit() {
	got := damage.ExpectedDamagePerHit("1d8+4", "2d8+4", 0.6, 0.05, false)
	s.Assert().InDelta(5.325, got, 1e-9)
}

func (s *DamageTestSuite) TestExpectedDamagePerHitRerollLowFaces() {
	plain := damage.ExpectedDamagePerHit("2d6+4", "4d6+4", 0.65, 0.05, false)
	reroll := damage.ExpectedDamagePerHit("2d6+4", "4d6+4", 0.65, 0.05, true)
	s.Assert().Greater(reroll, plain)
}

func (s *DamageTestSuite) TestCritChanceCappedAtHitChance() {
	// 19-20 crit range against a target hit only on a natural 20
	got := damage.ExpectedDamagePerHit("1d8", "2d8", 0.05, 0.10, false)
	s.Assert().InDelta(0.05*9, got, 1e-9)
	s.Assert().GreaterOrEqual(got, 0.0)
}

func (s *DamageTestSuite) TestExpectedDamageZeroChance() {
	s.Assert().Zero(damage.ExpectedDamagePerHit("1d8+4", "2d8+4", 0, 0, false))
}

func (s *DamageTestSuite) TestExpectedDamageUnreadableText() {
	got := damage.ExpectedDamagePerHit("???", "2d8", 0.6, 0.05, false)
	s.Assert().InDelta(0.05*9, got, 1e-9)
}

func (s *DamageTestSuite) TestTradeoffFavorsModifiedAgainstLowDefense() {
	result := damage.EvaluateTradeoff(damage.TradeoffInput{
		AttackBonus: 10,
		HitDamage:   "1d8+5",
		CritDamage:  "2d8+5",
		Defense:     12,
		Mode:        probability.ModeNormal,
	})

	s.Assert().Equal(damage.ChoiceModified, result.Chosen)
	s.Assert().InDelta(0.95, result.Baseline.HitProbability, 1e-9)
	s.Assert().InDelta(9.25, result.Baseline.ExpectedDamage, 1e-9)
	s.Assert().InDelta(0.70, result.Modified.HitProbability, 1e-9)
	s.Assert().InDelta(13.875, result.Modified.ExpectedDamage, 1e-9)
	s.Assert().InDelta(4.625, result.Gain(), 1e-9)
}

func (s *DamageTestSuite) TestTradeoffFavorsBaselineAgainstHighDefense() {
	result := damage.EvaluateTradeoff(damage.TradeoffInput{
		AttackBonus: 5,
		HitDamage:   "1d8+5",
		CritDamage:  "2d8+5",
		Defense:     20,
	})

	s.Assert().Equal(damage.ChoiceBaseline, result.Chosen)
	s.Assert().InDelta(3.075, result.Baseline.ExpectedDamage, 1e-9)
	s.Assert().InDelta(1.2, result.Modified.ExpectedDamage, 1e-9)
	s.Assert().Negative(result.Gain())
}

func (s *DamageTestSuite) TestTradeoffTieKeepsBaseline() {
	result := damage.EvaluateTradeoff(damage.TradeoffInput{
		AttackBonus: 0,
		HitDamage:   "1d8",
		CritDamage:  "2d8",
		Defense:     30,
		Delta:       damage.Delta{ToHit: -5, ToDamage: 0},
	})

	s.Assert().Equal(result.Baseline.ExpectedDamage, result.Modified.ExpectedDamage)
	s.Assert().Equal(damage.ChoiceBaseline, result.Chosen)
}

func (s *DamageTestSuite) TestTradeoffCustomDelta() {
	result := damage.EvaluateTradeoff(damage.TradeoffInput{
		AttackBonus: 8,
		HitDamage:   "1d8+3",
		CritDamage:  "2d8+3",
		Defense:     16,
		Delta:       damage.Delta{ToHit: -2, ToDamage: 4},
	})

	s.Assert().InDelta(0.55, result.Modified.HitProbability, 1e-9)
}

func (s *DamageTestSuite) TestTradeoffBestOfThreeUnderAdvantage() {
	in := damage.TradeoffInput{
		AttackBonus: 7,
		HitDamage:   "2d6+4",
		CritDamage:  "4d6+4",
		Defense:     19,
		Mode:        probability.ModeAdvantage,
	}

	two := damage.EvaluateTradeoff(in)
	s.Assert().Equal(damage.ChoiceBaseline, two.Chosen)
	s.Assert().InDelta(8.355, two.Baseline.ExpectedDamage, 1e-9)

	in.BestOfThree = true
	three := damage.EvaluateTradeoff(in)
	s.Assert().Equal(damage.ChoiceModified, three.Chosen)
	s.Assert().InDelta(1-0.55*0.55*0.55, three.Baseline.HitProbability, 1e-9)
	s.Assert().InDelta(10.16825, three.Baseline.ExpectedDamage, 1e-9)
	s.Assert().InDelta(0.488, three.Modified.HitProbability, 1e-9)
	s.Assert().InDelta(11.246375, three.Modified.ExpectedDamage, 1e-9)
}

func (s *DamageTestSuite) TestTradeoffBestOfThreeIgnoredWithoutAdvantage() {
	in := damage.TradeoffInput{
		AttackBonus: 7,
		HitDamage:   "2d6+4",
		CritDamage:  "4d6+4",
		Defense:     19,
	}
	plain := damage.EvaluateTradeoff(in)

	in.BestOfThree = true
	s.Assert().Equal(plain, damage.EvaluateTradeoff(in))
}

func (s *DamageTestSuite) TestSweepTradeoff() {
	in := damage.TradeoffInput{
		AttackBonus: 8,
		HitDamage:   "1d8+5",
		CritDamage:  "2d8+5",
	}

	points := damage.SweepTradeoff(in, damage.DefaultSweepFrom, damage.DefaultSweepTo)
	s.Require().Len(points, 16)
	s.Assert().Equal(10, points[0].Defense)
	s.Assert().Equal(25, points[15].Defense)
	s.Assert().Equal(damage.ChoiceModified, points[0].Result.Chosen)
	s.Assert().Equal(damage.ChoiceBaseline, points[15].Result.Chosen)

	for i, p := range points {
		single := in
		single.Defense = p.Defense
		s.Assert().Equal(damage.EvaluateTradeoff(single), p.Result, "defense %d", p.Defense)
		if i > 0 {
			s.Assert().LessOrEqual(p.Result.Baseline.HitProbability, points[i-1].Result.Baseline.HitProbability)
		}
	}

	windows := damage.Windows(points)
	s.Require().GreaterOrEqual(len(windows), 2)
	s.Assert().Equal(10, windows[0].From)
	s.Assert().Equal(damage.ChoiceModified, windows[0].Chosen)
	s.Assert().Equal(25, windows[len(windows)-1].To)
	s.Assert().Equal(damage.ChoiceBaseline, windows[len(windows)-1].Chosen)
	for i := 1; i < len(windows); i++ {
		s.Assert().Equal(windows[i-1].To+1, windows[i].From)
		s.Assert().NotEqual(windows[i-1].Chosen, windows[i].Chosen)
	}
}

func (s *DamageTestSuite) TestSweepTradeoffEmptyRange() {
	s.Assert().Empty(damage.SweepTradeoff(damage.TradeoffInput{}, 20, 10))
	s.Assert().Empty(damage.Windows(nil))
}
