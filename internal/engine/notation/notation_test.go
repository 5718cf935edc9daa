package notation_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
)

type NotationTestSuite struct {
	suite.Suite
}

func TestNotationSuite(t *testing.T) {
	suite.Run(t, new(NotationTestSuite))
}

func (s *NotationTestSuite) TestParse() {
	testCases := []struct {
		name     string
		input    string
		kind     notation.Kind
		count    int
		sides    int
		modifier int
	}{
		{name: "plain dice", input: "1d8", kind: notation.KindDice, count: 1, sides: 8},
		{name: "positive modifier", input: "2d6+3", kind: notation.KindDice, count: 2, sides: 6, modifier: 3},
		{name: "negative modifier with spaces", input: "2d6 - 1", kind: notation.KindDice, count: 2, sides: 6, modifier: -1},
		{name: "omitted count", input: "d12", kind: notation.KindDice, count: 1, sides: 12},
		{name: "trailing words", input: "1d10+4 piercing", kind: notation.KindDice, count: 1, sides: 10, modifier: 4},
		{name: "symbolic modifier ignored", input: "1d8+STR", kind: notation.KindDice, count: 1, sides: 8},
		{name: "flat", input: " 7 ", kind: notation.KindFlat},
		{name: "zero sides", input: "1d0", kind: notation.KindInvalid},
		{name: "empty", input: "", kind: notation.KindInvalid},
		{name: "garbage", input: "lots", kind: notation.KindInvalid},
		{name: "infinity", input: "Inf", kind: notation.KindInvalid},
		{name: "hex number", input: "0x10", kind: notation.KindInvalid},
		{name: "exponent", input: "1e3", kind: notation.KindInvalid},
		{name: "signed decimal", input: "-2.5", kind: notation.KindFlat},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			expr := notation.Parse(tc.input)
			s.Assert().Equal(tc.kind, expr.Kind)
			s.Assert().Equal(tc.input, expr.Source)
			if tc.kind == notation.KindDice {
				s.Assert().Equal(tc.count, expr.Count)
				s.Assert().Equal(tc.sides, expr.Sides)
				s.Assert().Equal(tc.modifier, expr.Modifier)
			}
			s.Assert().Equal(tc.kind != notation.KindInvalid, expr.Valid())
		})
	}
}

func (s *NotationTestSuite) TestEvaluatePlain() {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"1d8", 4.5},
		{"2d6-1", 6},
		{"1d4 + 2", 4.5},
		{"1d8+4", 8.5},
		{"5", 5},
		{"2.5", 2.5},
		{"0d6+3", 3},
		{"", 0},
		{"not dice", 0},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Assert().InDelta(tc.expected, notation.Evaluate(tc.input, false), 1e-9)
		})
	}
}

func (s *NotationTestSuite) TestEvaluateRerollLowFaces() {
	testCases := []struct {
		input    string
		expected float64
	}{
		{"1d8", 5.25},
		{"1d12", 88.0 / 12.0},
		{"1d4", 3},
		{"2d6", 2 * 25.0 / 6.0},
		{"1d8+4", 9.25},
		{"1d1", 1},
		{"7", 7},
		{"junk", 0},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Assert().InDelta(tc.expected, notation.Evaluate(tc.input, true), 1e-9)
		})
	}
}

func (s *NotationTestSuite) TestRerollNeverLowersAverage() {
	for _, sides := range []int{1, 2, 3, 4, 6, 8, 10, 12, 20, 100} {
		expr := notation.Expression{Kind: notation.KindDice, Count: 1, Sides: sides}
		s.Assert().GreaterOrEqual(expr.Average(true), expr.Average(false), "d%d", sides)
	}
	s.Assert().Greater(notation.Evaluate("1d4", true), notation.Evaluate("1d4", false))
}

func (s *NotationTestSuite) TestEvaluateIsIdempotent() {
	first := notation.Evaluate("3d6+2", true)
	for range 5 {
		s.Assert().Equal(first, notation.Evaluate("3d6+2", true))
	}
}

func (s *NotationTestSuite) TestAddFlat() {
	testCases := []struct {
		name     string
		input    string
		bonus    int
		expected string
	}{
		{"add to modifier", "1d8+5", 10, "1d8+15"},
		{"add to bare dice", "2d6", 10, "2d6+10"},
		{"negative result", "1d8", -3, "1d8-3"},
		{"net zero drops suffix", "2d6-1", 1, "2d6"},
		{"normalizes spacing", "1d8 + 4", 1, "1d8+5"},
		{"keeps omitted count", "d8+1", 2, "d8+3"},
		{"flat number", "7", 3, "10"},
		{"flat decimal", "2.5", 1, "3.5"},
		{"unreadable unchanged", "see notes", 4, "see notes"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, notation.AddFlat(tc.input, tc.bonus))
		})
	}
}

func (s *NotationTestSuite) TestAddFlatShiftsAverage() {
	base := notation.Evaluate("1d8+4", false)
	s.Assert().InDelta(base+10, notation.Evaluate(notation.AddFlat("1d8+4", 10), false), 1e-9)
}

func (s *NotationTestSuite) TestDoubleDice() {
	s.Assert().Equal("2d8+4", notation.DoubleDice("1d8+4"))
	s.Assert().Equal("4d6", notation.DoubleDice("2d6"))
	s.Assert().Equal("2d12-1", notation.DoubleDice("d12-1"))
	s.Assert().Equal("5", notation.DoubleDice("5"))
}

func (s *NotationTestSuite) TestSplitDice() {
	term, rest, ok := notation.SplitDice("1d8 + STR")
	s.Assert().True(ok)
	s.Assert().Equal("1d8", term)
	s.Assert().Equal(" + STR", rest)

	term, rest, ok = notation.SplitDice("PB + STR")
	s.Assert().False(ok)
	s.Assert().Empty(term)
	s.Assert().Equal("PB + STR", rest)
}

func (s *NotationTestSuite) TestString() {
	s.Assert().Equal("1d8+4", notation.Parse("1d8 + 4").String())
	s.Assert().Equal("3", notation.Parse("3").String())
	s.Assert().Equal("??", notation.Parse("??").String())
	s.Assert().Equal("dice", notation.KindDice.String())
	s.Assert().Equal("invalid", notation.KindInvalid.String())
}
