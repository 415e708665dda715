package schedule

import (
	"context"
	"log/slog"

	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/market"
	"UltimateCareer/service/career/internal/validate"
	"github.com/google/uuid"
)

// Reader risolve il contesto di gioco di una career: squadre, classifica,
// giornate e prossima partita. Ogni lettura autorizza prima la career.
type Reader struct {
	repo   Repository
	owners career.Authorizer
	logger *slog.Logger
}

// NewReader crea il lettore del calendario.
func NewReader(repo Repository, owners career.Authorizer, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{repo: repo, owners: owners, logger: logger}
}

// DivisionTeams ritorna le squadre della divisione della career.
func (r *Reader) DivisionTeams(ctx context.Context, careerID, requesterID uuid.UUID) ([]Team, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return r.repo.DivisionTeams(ctx, c.DivisionID)
}

// MyTeam ritorna la squadra della career con la rosa.
func (r *Reader) MyTeam(ctx context.Context, careerID, requesterID uuid.UUID) (*TeamWithPlayers, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return r.teamWithPlayers(ctx, c.TeamID)
}

// TeamByID ritorna una squadra qualsiasi con la rosa.
func (r *Reader) TeamByID(ctx context.Context, careerID, requesterID, teamID uuid.UUID) (*TeamWithPlayers, error) {
	if _, err := r.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	return r.teamWithPlayers(ctx, teamID)
}

func (r *Reader) teamWithPlayers(ctx context.Context, teamID uuid.UUID) (*TeamWithPlayers, error) {
	team, err := r.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	players, err := r.repo.PlayersByTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	return &TeamWithPlayers{Team: team, Players: players}, nil
}

// SquadPlayers ritorna i giocatori della squadra della career.
func (r *Reader) SquadPlayers(ctx context.Context, careerID, requesterID uuid.UUID) ([]market.Player, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return r.repo.PlayersByTeam(ctx, c.TeamID)
}

func (r *Reader) PlayerByID(ctx context.Context, careerID, requesterID, playerID uuid.UUID) (*market.Player, error) {
	if _, err := r.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	p, err := r.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Standings ritorna la classifica della divisione ordinata per posizione.
func (r *Reader) Standings(ctx context.Context, careerID, requesterID uuid.UUID) ([]Standing, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return r.repo.Standings(ctx, c.DivisionID)
}

func (r *Reader) Rounds(ctx context.Context, careerID, requesterID uuid.UUID) ([]Round, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return r.repo.Rounds(ctx, c.DivisionID)
}

// RoundByNumber ritorna la giornata con le sue partite.
func (r *Reader) RoundByNumber(ctx context.Context, careerID, requesterID uuid.UUID, number int) (*RoundWithMatches, error) {
	if number < 1 {
		return nil, ErrRoundNumber
	}
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	round, err := r.repo.RoundByNumber(ctx, c.DivisionID, number)
	if err != nil {
		return nil, err
	}
	matches, err := r.repo.MatchesByRound(ctx, round.ID)
	if err != nil {
		return nil, err
	}
	return &RoundWithMatches{Round: round, Matches: matches}, nil
}

// MatchByID cerca la partita nella divisione della career.
func (r *Reader) MatchByID(ctx context.Context, careerID, requesterID, matchID uuid.UUID) (*Match, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	m, err := r.repo.GetMatch(ctx, matchID, c.DivisionID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// NextMatch ritorna nil, nil quando non c'e' una partita da giocare
// nella giornata corrente.
func (r *Reader) NextMatch(ctx context.Context, careerID, requesterID uuid.UUID) (*Match, error) {
	c, err := r.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return r.repo.FindNextForTeam(ctx, c.DivisionID, c.CurrentRound, c.TeamID)
}

// ResizeDivision aggiorna il numero di squadre e ricalcola le giornate.
// Non ha scope career: e' un'operazione di amministrazione.
func (r *Reader) ResizeDivision(ctx context.Context, divisionID uuid.UUID, input ResizeInput) (*Division, error) {
	if err := validate.Struct(input, map[string]string{
		"total_teams.gte": "Must have at least 2 teams",
		"total_teams.lte": "Must have at most 100 teams",
	}); err != nil {
		return nil, err
	}

	d, err := r.repo.ResizeDivision(ctx, divisionID, input.TotalTeams, TotalRounds(input.TotalTeams))
	if err != nil {
		return nil, err
	}
	r.logger.Info("divisione aggiornata", "division_id", divisionID, "total_teams", d.TotalTeams, "total_rounds", d.TotalRounds)
	return &d, nil
}
