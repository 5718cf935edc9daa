// Package v1alpha1 serves the combat analysis, build library and dice APIs
// over gRPC with a JSON codec
package v1alpha1

import (
	"context"
	"time"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/dice"
)

// DiceHandlerConfig holds dependencies for the dice handler
type DiceHandlerConfig struct {
	DiceService dice.Service
}

// Validate ensures all required dependencies are present
func (c *DiceHandlerConfig) Validate() error {
	if c.DiceService == nil {
		return errors.InvalidArgument("dice service is required")
	}
	return nil
}

// DiceHandler implements DiceServiceServer
type DiceHandler struct {
	diceService dice.Service
}

var _ DiceServiceServer = (*DiceHandler)(nil)

// NewDiceHandler creates a new dice handler with the given configuration
func NewDiceHandler(cfg *DiceHandlerConfig) (*DiceHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &DiceHandler{
		diceService: cfg.DiceService,
	}, nil
}

func owner(ownerType, ownerID string) (entities.Ref, error) {
	if ownerType == "" {
		return entities.Ref{}, errors.InvalidArgument("owner_type is required")
	}
	if ownerID == "" {
		return entities.Ref{}, errors.InvalidArgument("owner_id is required")
	}
	return entities.Ref{ID: ownerID, Type: ownerType}, nil
}

// RollDamage rolls a damage expression and stores the result in a session
func (h *DiceHandler) RollDamage(
	ctx context.Context,
	req *RollDamageRequest,
) (*RollDamageResponse, error) {
	ref, err := owner(req.OwnerType, req.OwnerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Notation == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notation is required"))
	}
	if req.TTLSeconds < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ttl_seconds cannot be negative"))
	}

	out, err := h.diceService.RollDamage(ctx, &dice.RollDamageInput{
		Owner:          ref,
		Context:        req.Context,
		Notation:       req.Notation,
		Description:    req.Description,
		RerollLowFaces: req.RerollLowFaces,
		Critical:       req.Critical,
		TTL:            time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RollDamageResponse{
		Roll:      out.Roll,
		Rolls:     out.Session.Rolls,
		ExpiresAt: out.Session.ExpiresAt.Unix(),
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (h *DiceHandler) GetRollSession(
	ctx context.Context,
	req *GetRollSessionRequest,
) (*GetRollSessionResponse, error) {
	ref, err := owner(req.OwnerType, req.OwnerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.GetRollSession(ctx, &dice.GetRollSessionInput{
		Owner:   ref,
		Context: req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetRollSessionResponse{
		Rolls:     out.Session.Rolls,
		CreatedAt: out.Session.CreatedAt.Unix(),
		ExpiresAt: out.Session.ExpiresAt.Unix(),
	}, nil
}

// ClearRollSession removes a dice roll session
func (h *DiceHandler) ClearRollSession(
	ctx context.Context,
	req *ClearRollSessionRequest,
) (*ClearRollSessionResponse, error) {
	ref, err := owner(req.OwnerType, req.OwnerID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.diceService.ClearRollSession(ctx, &dice.ClearRollSessionInput{
		Owner:   ref,
		Context: req.Context,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ClearRollSessionResponse{
		Message:      "Roll session cleared successfully",
		RollsCleared: out.RollsDeleted,
	}, nil
}
