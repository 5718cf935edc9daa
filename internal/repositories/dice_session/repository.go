// Package dicesession stores short-lived damage roll sessions
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/dice_session Repository

// DiceSession groups the rolls an owner made in one context, e.g. every
// greatsword damage roll previewed for build_123.
type DiceSession struct {
	OwnerType string     `json:"owner_type"`
	OwnerID   string     `json:"owner_id"`
	Context   string     `json:"context"`
	Rolls     []DiceRoll `json:"rolls"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// DiceRoll is one rolled damage expression
type DiceRoll struct {
	RollID   string `json:"roll_id"`
	Notation string `json:"notation"`
	Dice     []int  `json:"dice"`
	// Rerolled holds the original faces a reroll replaced
	Rerolled    []int  `json:"rerolled,omitempty"`
	Modifier    int    `json:"modifier"`
	DiceTotal   int    `json:"dice_total"`
	Total       int    `json:"total"`
	Critical    bool   `json:"critical,omitempty"`
	Description string `json:"description"`
}

// Key identifies a session
type Key struct {
	OwnerType string
	OwnerID   string
	Context   string
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	Key   Key
	Rolls []DiceRoll
	TTL   time.Duration // zero uses the repository default
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	Key Key
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	Key Key
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session, keeping its expiry
	Update(ctx context.Context, session *DiceSession) error
}
