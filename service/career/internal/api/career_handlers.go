package api

import (
	"context"

	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/auth"
	"UltimateCareer/service/career/internal/career"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errRequestRequired = status.Error(codes.InvalidArgument, "request is required")

// ListCareers ritorna le career del richiedente, dalla piu' recente.
func (s *GRPCServer) ListCareers(ctx context.Context, req *careerv1.ListCareersRequest) (*careerv1.ListCareersResponse, error) {
	userID, err := auth.RequesterID(ctx)
	if err != nil {
		return nil, s.fail("ListCareers", err)
	}
	careers, err := s.careers.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, s.fail("ListCareers", err)
	}

	out := make([]*careerv1.Career, 0, len(careers))
	for i := range careers {
		out = append(out, toCareer(&careers[i]))
	}
	return &careerv1.ListCareersResponse{Careers: out}, nil
}

func (s *GRPCServer) GetCareer(ctx context.Context, req *careerv1.GetCareerRequest) (*careerv1.Career, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetCareer", err)
	}
	c, err := s.careers.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("GetCareer", err)
	}
	return toCareer(c), nil
}

// CreateCareer crea la career per il richiedente; la validazione degli id
// avviene nel dominio.
func (s *GRPCServer) CreateCareer(ctx context.Context, req *careerv1.CreateCareerRequest) (*careerv1.Career, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	userID, err := auth.RequesterID(ctx)
	if err != nil {
		return nil, s.fail("CreateCareer", err)
	}
	c, err := s.careers.Create(ctx, userID, career.CreateInput{
		ChampionshipID: req.ChampionshipId,
		TeamID:         req.TeamId,
	})
	if err != nil {
		return nil, s.fail("CreateCareer", err)
	}
	return toCareer(c), nil
}

func (s *GRPCServer) DeleteCareer(ctx context.Context, req *careerv1.DeleteCareerRequest) (*careerv1.DeleteCareerResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("DeleteCareer", err)
	}
	if err := s.careers.Delete(ctx, careerID, requesterID); err != nil {
		return nil, s.fail("DeleteCareer", err)
	}
	return &careerv1.DeleteCareerResponse{}, nil
}

// UpdateProgress e' riservata agli admin: la chiama il processo di fine giornata.
func (s *GRPCServer) UpdateProgress(ctx context.Context, req *careerv1.UpdateProgressRequest) (*careerv1.Career, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	if err := auth.RequireAdmin(ctx); err != nil {
		return nil, s.fail("UpdateProgress", err)
	}
	careerID, err := parseID("career_id", req.CareerId)
	if err != nil {
		return nil, s.fail("UpdateProgress", err)
	}
	c, err := s.careers.UpdateProgress(ctx, careerID, career.ProgressInput{
		CurrentRound: int(req.CurrentRound),
		Status:       career.Status(req.Status),
	})
	if err != nil {
		return nil, s.fail("UpdateProgress", err)
	}
	return toCareer(c), nil
}
