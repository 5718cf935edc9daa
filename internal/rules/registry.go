// Package rules evaluates the attack bonus and damage formulas stored on
// attack profiles. Formulas are CEL expressions over PB, LEVEL and the six
// ability modifiers, with max(a, b) available for finesse weapons.
package rules

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

var abilityNames = []string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}

// Variables are the values a formula can reference
type Variables struct {
	PB        int
	Level     int
	Modifiers map[string]int
}

// VariablesFor derives formula variables from a build
func VariablesFor(b *entities.Build) Variables {
	return Variables{
		PB:        b.ProficiencyOrDefault(),
		Level:     b.Level,
		Modifiers: b.Abilities.Modifiers(),
	}
}

func (v Variables) activation() map[string]any {
	act := map[string]any{
		"PB":    int64(v.PB),
		"LEVEL": int64(v.Level),
	}
	for _, name := range abilityNames {
		act[name] = int64(v.Modifiers[name])
	}
	return act
}

// Registry compiles formulas once and caches the programs. It is safe for
// concurrent use.
type Registry struct {
	env      *cel.Env
	programs sync.Map // formula -> cel.Program
}

// NewRegistry builds the CEL environment
func NewRegistry() (*Registry, error) {
	opts := []cel.EnvOption{
		cel.Variable("PB", cel.IntType),
		cel.Variable("LEVEL", cel.IntType),
		cel.Function("max",
			cel.Overload("max_int_int",
				[]*cel.Type{cel.IntType, cel.IntType},
				cel.IntType,
				cel.BinaryBinding(func(lhs, rhs ref.Val) ref.Val {
					a, b := lhs.(types.Int), rhs.(types.Int)
					if a > b {
						return a
					}
					return b
				}),
			),
		),
	}
	for _, name := range abilityNames {
		opts = append(opts, cel.Variable(name, cel.IntType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create formula environment")
	}
	return &Registry{env: env}, nil
}

func (r *Registry) program(formula string) (cel.Program, error) {
	if prg, ok := r.programs.Load(formula); ok {
		return prg.(cel.Program), nil
	}

	ast, iss := r.env.Compile(formula)
	if iss.Err() != nil {
		return nil, errors.InvalidArgumentf("formula %q does not compile: %v", formula, iss.Err()).
			WithMeta("formula", formula)
	}
	prg, err := r.env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to plan formula %q", formula)
	}

	r.programs.Store(formula, prg)
	return prg, nil
}

// Eval evaluates an integer formula such as "PB + STR + 2"
func (r *Registry) Eval(formula string, vars Variables) (int, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return 0, errors.InvalidArgument("formula is empty")
	}

	prg, err := r.program(formula)
	if err != nil {
		return 0, err
	}

	out, _, err := prg.Eval(vars.activation())
	if err != nil {
		return 0, errors.InvalidArgumentf("formula %q failed: %v", formula, err).
			WithMeta("formula", formula)
	}

	n, ok := out.Value().(int64)
	if !ok {
		return 0, errors.InvalidArgumentf("formula %q is not an integer", formula).
			WithMeta("formula", formula)
	}
	return int(n), nil
}

// ResolveDamage rewrites a damage formula into plain dice notation, e.g.
// "1d8+STR" with STR +3 becomes "1d8+3". The first dice term is kept and
// everything around it is evaluated as the modifier. On error the formula is
// returned unchanged alongside the error.
func (r *Registry) ResolveDamage(formula string, vars Variables) (string, error) {
	trimmed := strings.TrimSpace(formula)
	if trimmed == "" {
		return formula, nil
	}
	if notation.Parse(trimmed).Kind == notation.KindFlat {
		return trimmed, nil
	}

	term, _, ok := notation.SplitDice(trimmed)
	if !ok {
		n, err := r.Eval(trimmed, vars)
		if err != nil {
			return formula, err
		}
		return strconv.Itoa(n), nil
	}

	rest := strings.TrimSpace(strings.Replace(trimmed, term, "", 1))
	if rest == "" {
		return term, nil
	}

	modifier, err := r.Eval(strings.Replace(trimmed, term, "0", 1), vars)
	if err != nil {
		return formula, err
	}
	return notation.AddFlat(term, modifier), nil
}
