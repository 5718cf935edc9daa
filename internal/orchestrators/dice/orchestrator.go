// Package dice implements the dice orchestrator for damage roll sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/engine/notation"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/idgen"
	dicesession "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/dice_session"
)

const (
	// ContextDamage is used when a roll names no context
	ContextDamage = "damage"

	// MaxDice caps a single roll, critical doubling included
	MaxDice = 100
)

// Service defines the interface for dice operations
type Service interface {
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)
}

// Roller rolls count dice of the given size and returns each face
type Roller interface {
	Roll(count, size int) ([]int, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to the rpg-toolkit dice roller
	Roller Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = ToolkitRoller{}
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		idGen:           cfg.IDGenerator,
		roller:          roller,
	}, nil
}

// ToolkitRoller rolls through rpg-toolkit
type ToolkitRoller struct{}

// Roll parses the individual faces out of the toolkit description,
// which looks like "+2d6[3,4]=7"
func (ToolkitRoller) Roll(count, size int) ([]int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create dice roll")
	}

	description := roll.GetDescription()
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil, errors.Internalf("unexpected roll description: %s", description)
	}

	faces := make([]int, 0, count)
	for _, s := range strings.Split(description[start+1:end], ",") {
		face, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, errors.Internalf("unexpected roll description: %s", description)
		}
		faces = append(faces, face)
	}
	if len(faces) != count {
		return nil, errors.Internalf("rolled %d dice, expected %d", len(faces), count)
	}
	return faces, nil
}

func sessionKey(owner core.Entity, rollContext string) (dicesession.Key, error) {
	if owner == nil || owner.GetID() == "" || owner.GetType() == "" {
		return dicesession.Key{}, errors.InvalidArgument("owner is required")
	}
	if rollContext == "" {
		rollContext = ContextDamage
	}
	return dicesession.Key{
		OwnerType: owner.GetType(),
		OwnerID:   owner.GetID(),
		Context:   rollContext,
	}, nil
}

// rollExpression rolls parsed notation. Great Weapon Fighting style rerolls
// each 1 or 2 once and keeps the new face.
func (o *orchestrator) rollExpression(expr notation.Expression, rerollLowFaces bool) (*dicesession.DiceRoll, error) {
	roll := &dicesession.DiceRoll{}

	switch expr.Kind {
	case notation.KindFlat:
		if expr.Flat != math.Trunc(expr.Flat) {
			return nil, errors.InvalidArgumentf("flat damage must be a whole number: %s", expr.Source)
		}
		roll.Modifier = int(expr.Flat)
	case notation.KindDice:
		if expr.Count < 1 || expr.Count > MaxDice {
			return nil, errors.InvalidArgumentf("dice count must be between 1 and %d: %s", MaxDice, expr.Source)
		}

		faces, err := o.roller.Roll(expr.Count, expr.Sides)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll dice")
		}
		if rerollLowFaces {
			for i, face := range faces {
				if face > 2 {
					continue
				}
				again, err := o.roller.Roll(1, expr.Sides)
				if err != nil {
					return nil, errors.Wrap(err, "failed to reroll die")
				}
				roll.Rerolled = append(roll.Rerolled, face)
				faces[i] = again[0]
			}
		}

		roll.Dice = faces
		for _, face := range faces {
			roll.DiceTotal += face
		}
		roll.Modifier = expr.Modifier
	default:
		return nil, errors.InvalidArgumentf("invalid dice notation: %s", expr.Source)
	}

	roll.Total = max(roll.DiceTotal+roll.Modifier, 0)
	return roll, nil
}

// RollDamage rolls a damage expression and stores the result in a session
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := sessionKey(input.Owner, input.Context)
	if err != nil {
		return nil, err
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	text := input.Notation
	if input.Critical {
		text = notation.DoubleDice(text)
	}
	expr := notation.Parse(text)

	roll, err := o.rollExpression(expr, input.RerollLowFaces)
	if err != nil {
		return nil, err
	}
	roll.RollID = o.idGen.Generate()
	roll.Notation = expr.String()
	roll.Critical = input.Critical
	roll.Description = input.Description

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{Key: key})

	var session *dicesession.DiceSession
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
			Key:   key,
			Rolls: []dicesession.DiceRoll{*roll},
			TTL:   input.TTL,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice session")
		}
		session = createOutput.Session
	} else {
		session = getOutput.Session
		session.Rolls = append(session.Rolls, *roll)

		if err := o.diceSessionRepo.Update(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to update dice session")
		}
	}

	slog.Info("Dice rolled successfully",
		"owner_type", key.OwnerType,
		"owner_id", key.OwnerID,
		"context", key.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDamageOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := sessionKey(input.Owner, input.Context)
	if err != nil {
		return nil, err
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{Key: key})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	key, err := sessionKey(input.Owner, input.Context)
	if err != nil {
		return nil, err
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{Key: key})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"owner_type", key.OwnerType,
		"owner_id", key.OwnerID,
		"context", key.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}
