package schedule

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"UltimateCareer/service/career/internal/market"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository espone le letture del calendario e la modifica delle divisioni.
type Repository interface {
	DivisionTeams(ctx context.Context, divisionID uuid.UUID) ([]Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (Team, error)
	PlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]market.Player, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (market.Player, error)
	Standings(ctx context.Context, divisionID uuid.UUID) ([]Standing, error)
	Rounds(ctx context.Context, divisionID uuid.UUID) ([]Round, error)
	RoundByNumber(ctx context.Context, divisionID uuid.UUID, number int) (Round, error)
	MatchesByRound(ctx context.Context, roundID uuid.UUID) ([]Match, error)
	GetMatch(ctx context.Context, id, divisionID uuid.UUID) (Match, error)
	FindNextForTeam(ctx context.Context, divisionID uuid.UUID, currentRound int, teamID uuid.UUID) (*Match, error)
	ResizeDivision(ctx context.Context, divisionID uuid.UUID, totalTeams, totalRounds int) (Division, error)
}

type Repo struct {
	db *sqlx.DB
}

// NewRepo collega il repository a una connessione SQL.
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

const teamColumns = `t.id, t.name, t.short_name, t.city, t.stadium, t.prestige, t.logo_url`

const matchSelect = `
SELECT m.id, m.round_id, m.division_id,
       m.home_team_id, ht.name AS home_team_name,
       m.away_team_id, awt.name AS away_team_name,
       m.home_goals, m.away_goals, m.attendance, m.played
FROM matches m
JOIN teams ht ON ht.id = m.home_team_id
JOIN teams awt ON awt.id = m.away_team_id`

// DivisionTeams ritorna le squadre iscritte alla divisione.
func (r *Repo) DivisionTeams(ctx context.Context, divisionID uuid.UUID) ([]Team, error) {
	const query = `
SELECT ` + teamColumns + `
FROM division_teams dt
JOIN teams t ON t.id = dt.team_id
WHERE dt.division_id = $1
ORDER BY t.name ASC`

	teams := []Team{}
	if err := r.db.SelectContext(ctx, &teams, query, divisionID); err != nil {
		slog.Error("errore lettura squadre divisione", "error", err, "division_id", divisionID)
		return nil, err
	}
	return teams, nil
}

func (r *Repo) GetTeam(ctx context.Context, id uuid.UUID) (Team, error) {
	const query = `
SELECT ` + teamColumns + `
FROM teams t
WHERE t.id = $1`

	var t Team
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Team{}, ErrTeamNotFound
	}
	if err != nil {
		slog.Error("errore lettura squadra", "error", err, "team_id", id)
		return Team{}, err
	}
	return t, nil
}

func (r *Repo) PlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]market.Player, error) {
	const query = `
SELECT ` + market.PlayerColumns + `
FROM players
WHERE team_id = $1
ORDER BY position ASC, name ASC`

	players := []market.Player{}
	if err := r.db.SelectContext(ctx, &players, query, teamID); err != nil {
		slog.Error("errore lettura rosa", "error", err, "team_id", teamID)
		return nil, err
	}
	return players, nil
}

func (r *Repo) GetPlayer(ctx context.Context, id uuid.UUID) (market.Player, error) {
	const query = `
SELECT ` + market.PlayerColumns + `
FROM players
WHERE id = $1`

	var p market.Player
	err := r.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return market.Player{}, market.ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("errore lettura giocatore", "error", err, "player_id", id)
		return market.Player{}, err
	}
	return p, nil
}

// Standings ritorna la classifica della divisione, dalla prima posizione.
func (r *Repo) Standings(ctx context.Context, divisionID uuid.UUID) ([]Standing, error) {
	const query = `
SELECT s.id, s.division_id, s.team_id, t.name AS team_name, s.position, s.points, s.played,
       s.wins, s.draws, s.losses, s.goals_for, s.goals_against, s.goal_difference, s.form
FROM standings s
JOIN teams t ON t.id = s.team_id
WHERE s.division_id = $1
ORDER BY s.position ASC`

	standings := []Standing{}
	if err := r.db.SelectContext(ctx, &standings, query, divisionID); err != nil {
		slog.Error("errore lettura classifica", "error", err, "division_id", divisionID)
		return nil, err
	}
	return standings, nil
}

func (r *Repo) Rounds(ctx context.Context, divisionID uuid.UUID) ([]Round, error) {
	const query = `
SELECT id, division_id, season_id, number, status
FROM rounds
WHERE division_id = $1
ORDER BY number ASC`

	rounds := []Round{}
	if err := r.db.SelectContext(ctx, &rounds, query, divisionID); err != nil {
		slog.Error("errore lettura giornate", "error", err, "division_id", divisionID)
		return nil, err
	}
	return rounds, nil
}

func (r *Repo) RoundByNumber(ctx context.Context, divisionID uuid.UUID, number int) (Round, error) {
	round, err := r.findRound(ctx, divisionID, number)
	if err != nil {
		return Round{}, err
	}
	if round == nil {
		return Round{}, ErrRoundNotFound
	}
	return *round, nil
}

// findRound ritorna nil se la giornata non esiste.
func (r *Repo) findRound(ctx context.Context, divisionID uuid.UUID, number int) (*Round, error) {
	const query = `
SELECT id, division_id, season_id, number, status
FROM rounds
WHERE division_id = $1 AND number = $2`

	var round Round
	err := r.db.GetContext(ctx, &round, query, divisionID, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("errore lettura giornata", "error", err, "division_id", divisionID, "number", number)
		return nil, err
	}
	return &round, nil
}

func (r *Repo) MatchesByRound(ctx context.Context, roundID uuid.UUID) ([]Match, error) {
	const query = matchSelect + `
WHERE m.round_id = $1
ORDER BY ht.name ASC`

	matches := []Match{}
	if err := r.db.SelectContext(ctx, &matches, query, roundID); err != nil {
		slog.Error("errore lettura partite", "error", err, "round_id", roundID)
		return nil, err
	}
	return matches, nil
}

// GetMatch cerca la partita solo nella divisione indicata.
func (r *Repo) GetMatch(ctx context.Context, id, divisionID uuid.UUID) (Match, error) {
	const query = matchSelect + `
WHERE m.id = $1 AND m.division_id = $2`

	var m Match
	err := r.db.GetContext(ctx, &m, query, id, divisionID)
	if errors.Is(err, sql.ErrNoRows) {
		return Match{}, ErrMatchNotFound
	}
	if err != nil {
		slog.Error("errore lettura partita", "error", err, "match_id", id)
		return Match{}, err
	}
	return m, nil
}

// FindNextForTeam ritorna la partita non giocata della squadra nella giornata
// corrente, oppure nil se manca la giornata o la partita.
func (r *Repo) FindNextForTeam(ctx context.Context, divisionID uuid.UUID, currentRound int, teamID uuid.UUID) (*Match, error) {
	round, err := r.findRound(ctx, divisionID, currentRound)
	if err != nil || round == nil {
		return nil, err
	}

	const query = matchSelect + `
WHERE m.round_id = $1 AND m.played = false AND (m.home_team_id = $2 OR m.away_team_id = $2)
LIMIT 1`

	var m Match
	err = r.db.GetContext(ctx, &m, query, round.ID, teamID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		slog.Error("errore lettura prossima partita", "error", err, "round_id", round.ID, "team_id", teamID)
		return nil, err
	}
	return &m, nil
}

// ResizeDivision salva il nuovo numero di squadre e di giornate.
func (r *Repo) ResizeDivision(ctx context.Context, divisionID uuid.UUID, totalTeams, totalRounds int) (Division, error) {
	const query = `
UPDATE divisions
SET total_teams = $2, total_rounds = $3
WHERE id = $1
RETURNING id, championship_id, season_id, name, level, total_teams, promotion_slots, relegation_slots, total_rounds, status`

	var d Division
	err := r.db.GetContext(ctx, &d, query, divisionID, totalTeams, totalRounds)
	if errors.Is(err, sql.ErrNoRows) {
		return Division{}, ErrDivisionNotFound
	}
	if err != nil {
		slog.Error("errore update divisione", "error", err, "division_id", divisionID)
		return Division{}, err
	}
	return d, nil
}
