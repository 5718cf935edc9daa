package v1alpha1

import (
	"context"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/orchestrators/combatlab"
)

// CombatLabHandlerConfig holds dependencies for the combat lab handler
type CombatLabHandlerConfig struct {
	CombatLabService combatlab.Service
}

// Validate ensures all required dependencies are present
func (c *CombatLabHandlerConfig) Validate() error {
	if c.CombatLabService == nil {
		return errors.InvalidArgument("combat lab service is required")
	}
	return nil
}

// CombatLabHandler implements CombatLabServiceServer
type CombatLabHandler struct {
	combatLab combatlab.Service
}

var _ CombatLabServiceServer = (*CombatLabHandler)(nil)

// NewCombatLabHandler creates a new combat lab handler
func NewCombatLabHandler(cfg *CombatLabHandlerConfig) (*CombatLabHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CombatLabHandler{
		combatLab: cfg.CombatLabService,
	}, nil
}

func (s Selection) toOrchestrator() combatlab.Selection {
	return combatlab.Selection{
		BuildID:    s.BuildID,
		Build:      s.Build,
		ScenarioID: s.ScenarioID,
		Scenario:   s.Scenario,
	}
}

func (s Selection) validate() error {
	if s.BuildID == "" && s.Build == nil {
		return errors.InvalidArgument("build_id or build is required")
	}
	return nil
}

// AnalyzeBuild analyses a stored or inline build
func (h *CombatLabHandler) AnalyzeBuild(
	ctx context.Context,
	req *AnalyzeBuildRequest,
) (*AnalyzeBuildResponse, error) {
	if err := req.validate(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.combatLab.AnalyzeBuild(ctx, &combatlab.AnalyzeBuildInput{
		Selection: req.toOrchestrator(),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AnalyzeBuildResponse{Report: out.Report}, nil
}

// SweepTradeoff sweeps the -5/+10 trade-off over an AC range
func (h *CombatLabHandler) SweepTradeoff(
	ctx context.Context,
	req *SweepTradeoffRequest,
) (*SweepTradeoffResponse, error) {
	if err := req.validate(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.combatLab.SweepTradeoff(ctx, &combatlab.SweepTradeoffInput{
		Selection: req.toOrchestrator(),
		ProfileID: req.ProfileID,
		FromAC:    req.FromAC,
		ToAC:      req.ToAC,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SweepTradeoffResponse{Report: out.Report}, nil
}

// EstimateTimeToKill estimates rounds to kill for a damage per round
func (h *CombatLabHandler) EstimateTimeToKill(
	ctx context.Context,
	req *EstimateTimeToKillRequest,
) (*EstimateTimeToKillResponse, error) {
	out, err := h.combatLab.EstimateTimeToKill(ctx, &combatlab.EstimateTimeToKillInput{
		DPR:   req.DPR,
		HP:    req.HP,
		Pools: req.Pools,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EstimateTimeToKillResponse{
		Estimate: out.Estimate,
		Table:    out.Table,
	}, nil
}

// HitChance reports one attack's hit and crit chances
func (h *CombatLabHandler) HitChance(
	ctx context.Context,
	req *HitChanceRequest,
) (*HitChanceResponse, error) {
	if req.Defense < 1 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("defense must be at least 1"))
	}

	out, err := h.combatLab.HitChance(ctx, &combatlab.HitChanceInput{
		AttackBonus:   req.AttackBonus,
		Defense:       req.Defense,
		Mode:          req.Mode,
		CritThreshold: req.CritThreshold,
		ModifierDie:   req.ModifierDie,
		ModifierKind:  req.ModifierKind,
		BestOfThree:   req.BestOfThree,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &HitChanceResponse{
		Mode:        string(out.Mode),
		HitChance:   out.HitChance,
		CritChance:  out.CritChance,
		BestOfThree: out.BestOfThree,
	}, nil
}

// ScorePillars scores a stored or inline build on the non-combat pillars
func (h *CombatLabHandler) ScorePillars(
	ctx context.Context,
	req *ScorePillarsRequest,
) (*ScorePillarsResponse, error) {
	if req.BuildID == "" && req.Build == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("build_id or build is required"))
	}

	out, err := h.combatLab.ScorePillars(ctx, &combatlab.ScorePillarsInput{
		BuildID: req.BuildID,
		Build:   req.Build,
		Weights: req.Weights,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ScorePillarsResponse{Report: out.Report}, nil
}
