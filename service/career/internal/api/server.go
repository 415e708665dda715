package api

import (
	"context"
	"log/slog"

	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/apperr"
	"UltimateCareer/service/career/internal/auth"
	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/market"
	"UltimateCareer/service/career/internal/schedule"
	"UltimateCareer/service/career/internal/squad"
	"github.com/google/uuid"
)

// Interfacce dei servizi di dominio usate dagli handler.

type Careers interface {
	FindAllByUser(ctx context.Context, userID uuid.UUID) ([]career.Career, error)
	FindByID(ctx context.Context, id, requesterID uuid.UUID) (*career.Career, error)
	Create(ctx context.Context, userID uuid.UUID, input career.CreateInput) (*career.Career, error)
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
	UpdateProgress(ctx context.Context, id uuid.UUID, input career.ProgressInput) (*career.Career, error)
}

type Squads interface {
	GetTactic(ctx context.Context, careerID, requesterID uuid.UUID) (*squad.Tactic, error)
	CreateTactic(ctx context.Context, careerID, requesterID uuid.UUID, input squad.TacticInput) (*squad.Tactic, error)
	UpsertTactic(ctx context.Context, careerID, requesterID uuid.UUID, input squad.TacticInput) (*squad.Tactic, error)
	GetLineupWithPlayers(ctx context.Context, careerID, requesterID uuid.UUID) (*squad.LineupWithPlayers, error)
	SetLineup(ctx context.Context, careerID, requesterID uuid.UUID, input squad.SetLineupInput) (*squad.LineupWithPlayers, error)
}

type Markets interface {
	ListForSale(ctx context.Context, careerID, requesterID uuid.UUID, input market.ListForSaleInput) (*market.Player, error)
	DelistFromSale(ctx context.Context, careerID, requesterID, playerID uuid.UUID) (*market.Player, error)
	BrowseMarket(ctx context.Context, careerID, requesterID uuid.UUID) ([]market.Player, error)
	TransfersForCareer(ctx context.Context, careerID, requesterID uuid.UUID) ([]market.Transfer, error)
	BuyPlayer(ctx context.Context, careerID, requesterID uuid.UUID, input market.BuyInput) (*market.Purchase, error)
	RecordTransfer(ctx context.Context, input market.TransferInput) (*market.Transfer, error)
}

type Schedules interface {
	DivisionTeams(ctx context.Context, careerID, requesterID uuid.UUID) ([]schedule.Team, error)
	MyTeam(ctx context.Context, careerID, requesterID uuid.UUID) (*schedule.TeamWithPlayers, error)
	TeamByID(ctx context.Context, careerID, requesterID, teamID uuid.UUID) (*schedule.TeamWithPlayers, error)
	SquadPlayers(ctx context.Context, careerID, requesterID uuid.UUID) ([]market.Player, error)
	PlayerByID(ctx context.Context, careerID, requesterID, playerID uuid.UUID) (*market.Player, error)
	Standings(ctx context.Context, careerID, requesterID uuid.UUID) ([]schedule.Standing, error)
	Rounds(ctx context.Context, careerID, requesterID uuid.UUID) ([]schedule.Round, error)
	RoundByNumber(ctx context.Context, careerID, requesterID uuid.UUID, number int) (*schedule.RoundWithMatches, error)
	MatchByID(ctx context.Context, careerID, requesterID, matchID uuid.UUID) (*schedule.Match, error)
	NextMatch(ctx context.Context, careerID, requesterID uuid.UUID) (*schedule.Match, error)
	ResizeDivision(ctx context.Context, divisionID uuid.UUID, input schedule.ResizeInput) (*schedule.Division, error)
}

// GRPCServer espone career.v1 sopra i servizi di dominio.
// Qui si risolve il richiedente dal context e si mappano gli errori in status gRPC.
type GRPCServer struct {
	careerv1.UnimplementedCareerServiceServer
	logger    *slog.Logger
	careers   Careers
	squads    Squads
	markets   Markets
	schedules Schedules
}

// NewGRPCServer collega logger e servizi.
func NewGRPCServer(logger *slog.Logger, careers Careers, squads Squads, markets Markets, schedules Schedules) *GRPCServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &GRPCServer{logger: logger, careers: careers, squads: squads, markets: markets, schedules: schedules}
}

// fail logga gli errori inattesi e ritorna lo status gRPC per il chiamante.
func (s *GRPCServer) fail(method string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		s.logger.Error("errore interno", "method", method, "error", err)
	}
	return apperr.ToStatus(err)
}

// scope risolve richiedente e career id di una chiamata con scope career.
func scope(ctx context.Context, careerID string) (uuid.UUID, uuid.UUID, error) {
	requesterID, err := auth.RequesterID(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := parseID("career_id", careerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return requesterID, id, nil
}

// parseID valida un id nel path della richiesta.
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.Validation("Validation failed", apperr.FieldIssue{
			Field:   field,
			Message: field + " must be a valid UUID",
		})
	}
	return id, nil
}
