// Package notation parses and evaluates damage expressions such as "1d8+4",
// "2d6 - 1", "d12" or a bare "7".
//
// Parsing never fails. Text that is neither a dice term nor a finite number
// becomes an Invalid expression whose value is 0, and callers that care can
// check Valid to surface it.
package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind tags which variant of Expression is populated.
type Kind int

const (
	// KindInvalid is text that could not be read; it evaluates to 0.
	KindInvalid Kind = iota
	// KindDice is <count>d<sides> with an optional modifier.
	KindDice
	// KindFlat is a bare number.
	KindFlat
)

func (k Kind) String() string {
	switch k {
	case KindDice:
		return "dice"
	case KindFlat:
		return "flat"
	default:
		return "invalid"
	}
}

// The first dice term anywhere in the text wins, so trailing words such as
// "1d8+4 slashing" are tolerated.
var (
	expressionPattern = regexp.MustCompile(`(\d*)d(\d+)(?:\s*([+-])\s*(\d+))?`)
	termPattern       = regexp.MustCompile(`\d*d\d+`)
	flatPattern       = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?$`)
)

// Expression is a parsed damage expression.
type Expression struct {
	Kind     Kind
	Count    int
	Sides    int
	Modifier int
	Flat     float64
	Source   string

	// term is the dice term exactly as written, e.g. "d8" or "2d6".
	term string
}

// Parse reads text into an Expression. An omitted dice count means one die.
func Parse(text string) Expression {
	expr := Expression{Source: text}

	if loc := expressionPattern.FindStringSubmatchIndex(text); loc != nil {
		group := func(i int) string {
			if loc[2*i] < 0 {
				return ""
			}
			return text[loc[2*i]:loc[2*i+1]]
		}

		count := 1
		if c := group(1); c != "" {
			n, err := strconv.Atoi(c)
			if err != nil {
				return expr
			}
			count = n
		}
		sides, err := strconv.Atoi(group(2))
		if err != nil || sides < 1 {
			return expr
		}
		modifier := 0
		if m := group(4); m != "" {
			n, err := strconv.Atoi(m)
			if err != nil {
				return expr
			}
			modifier = n
			if group(3) == "-" {
				modifier = -n
			}
		}

		expr.Kind = KindDice
		expr.Count = count
		expr.Sides = sides
		expr.Modifier = modifier
		expr.term = text[loc[0]:loc[5]]
		return expr
	}

	flat := strings.TrimSpace(text)
	if !flatPattern.MatchString(flat) {
		return expr
	}
	v, err := strconv.ParseFloat(flat, 64)
	if err != nil {
		return expr
	}
	expr.Kind = KindFlat
	expr.Flat = v
	return expr
}

// Valid reports whether the text was understood.
func (e Expression) Valid() bool {
	return e.Kind != KindInvalid
}

// Average is the expected value. With rerollLowFaces each die showing 1 or 2
// is rerolled once and the second result kept, so those faces contribute the
// die's plain mean instead of their face value.
func (e Expression) Average(rerollLowFaces bool) float64 {
	switch e.Kind {
	case KindFlat:
		return e.Flat
	case KindDice:
		perDie := (float64(e.Sides) + 1) / 2
		if rerollLowFaces {
			perDie = rerollLowMean(e.Sides)
		}
		return float64(e.Count)*perDie + float64(e.Modifier)
	default:
		return 0
	}
}

// rerollLowMean computes the per-face average in closed form so large dice
// cost nothing.
func rerollLowMean(sides int) float64 {
	s := float64(sides)
	low := min(sides, 2)
	lowFaceSum := float64(low*(low+1)) / 2

	total := s*(s+1)/2 - lowFaceSum + float64(low)*(s+1)/2
	return total / s
}

// String renders the expression in canonical form. Invalid expressions
// render as their source text.
func (e Expression) String() string {
	switch e.Kind {
	case KindDice:
		return e.term + modifierSuffix(e.Modifier)
	case KindFlat:
		return strconv.FormatFloat(e.Flat, 'f', -1, 64)
	default:
		return e.Source
	}
}

// Evaluate is Parse followed by Average.
func Evaluate(text string, rerollLowFaces bool) float64 {
	return Parse(text).Average(rerollLowFaces)
}

// AddFlat adds bonus to the expression's modifier, keeping the dice term as
// written. A net zero modifier drops the suffix. Bare numbers are added
// numerically and unreadable text comes back unchanged.
func AddFlat(text string, bonus int) string {
	expr := Parse(text)
	switch expr.Kind {
	case KindDice:
		expr.Modifier += bonus
		return expr.String()
	case KindFlat:
		expr.Flat += float64(bonus)
		return expr.String()
	default:
		return text
	}
}

// DoubleDice doubles the number of dice and keeps the modifier, which is how
// critical hits are rolled. Anything without dice comes back unchanged.
func DoubleDice(text string) string {
	expr := Parse(text)
	if expr.Kind != KindDice {
		return text
	}
	return fmt.Sprintf("%dd%d%s", expr.Count*2, expr.Sides, modifierSuffix(expr.Modifier))
}

// SplitDice separates the first dice term from the rest of the text, e.g.
// "1d8 + STR" gives ("1d8", " + STR", true). Without a dice term the whole
// text is returned as rest.
func SplitDice(text string) (term, rest string, ok bool) {
	loc := termPattern.FindStringIndex(text)
	if loc == nil {
		return "", text, false
	}
	return text[loc[0]:loc[1]], text[:loc[0]] + text[loc[1]:], true
}

func modifierSuffix(modifier int) string {
	switch {
	case modifier > 0:
		return "+" + strconv.Itoa(modifier)
	case modifier < 0:
		return strconv.Itoa(modifier)
	default:
		return ""
	}
}
