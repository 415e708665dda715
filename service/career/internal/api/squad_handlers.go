package api

import (
	"context"

	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/squad"
)

func (s *GRPCServer) GetTactic(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.Tactic, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetTactic", err)
	}
	t, err := s.squads.GetTactic(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("GetTactic", err)
	}
	return toTactic(t), nil
}

func (s *GRPCServer) CreateTactic(ctx context.Context, req *careerv1.TacticRequest) (*careerv1.Tactic, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("CreateTactic", err)
	}
	t, err := s.squads.CreateTactic(ctx, careerID, requesterID, toTacticInput(req))
	if err != nil {
		return nil, s.fail("CreateTactic", err)
	}
	return toTactic(t), nil
}

func (s *GRPCServer) UpsertTactic(ctx context.Context, req *careerv1.TacticRequest) (*careerv1.Tactic, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("UpsertTactic", err)
	}
	t, err := s.squads.UpsertTactic(ctx, careerID, requesterID, toTacticInput(req))
	if err != nil {
		return nil, s.fail("UpsertTactic", err)
	}
	return toTactic(t), nil
}

// GetLineup risponde OK con lineup vuota se la formazione non e' mai stata salvata.
func (s *GRPCServer) GetLineup(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.GetLineupResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetLineup", err)
	}
	l, err := s.squads.GetLineupWithPlayers(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("GetLineup", err)
	}
	if l == nil {
		return &careerv1.GetLineupResponse{}, nil
	}
	return &careerv1.GetLineupResponse{Lineup: toLineup(l)}, nil
}

func (s *GRPCServer) SetLineup(ctx context.Context, req *careerv1.SetLineupRequest) (*careerv1.Lineup, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("SetLineup", err)
	}
	l, err := s.squads.SetLineup(ctx, careerID, requesterID, squad.SetLineupInput{
		Name:     req.Name,
		Starters: toLineupEntries(req.Starters),
		Reserves: toLineupEntries(req.Reserves),
	})
	if err != nil {
		return nil, s.fail("SetLineup", err)
	}
	return toLineup(l), nil
}
