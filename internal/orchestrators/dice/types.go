package dice

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	dicesession "github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/dice_session"
)

// RollDamageInput defines the request for rolling a damage expression
type RollDamageInput struct {
	// Owner is the build or scenario the session belongs to
	Owner   core.Entity
	Context string
	// Notation is resolved damage text such as "2d6+4"
	Notation       string
	Description    string
	RerollLowFaces bool
	// Critical doubles the dice before rolling
	Critical bool
	TTL      time.Duration
}

// RollDamageOutput defines the response for rolling damage
type RollDamageOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

// GetRollSessionInput defines the request for getting a roll session
type GetRollSessionInput struct {
	Owner   core.Entity
	Context string
}

// GetRollSessionOutput defines the response for getting a roll session
type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

// ClearRollSessionInput defines the request for clearing a roll session
type ClearRollSessionInput struct {
	Owner   core.Entity
	Context string
}

// ClearRollSessionOutput defines the response for clearing a roll session
type ClearRollSessionOutput struct {
	RollsDeleted int
}
