package career

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Accesso dati delle career su Postgres (persistence layer).
// Qui restano le query SQL e la traduzione in tipi di dominio.

// CareerRepository espone letture e scritture necessarie al dominio.
type CareerRepository interface {
	ListCareersByUser(ctx context.Context, userID uuid.UUID) ([]Career, error)
	GetCareer(ctx context.Context, id uuid.UUID) (Career, error)
	GetTeam(ctx context.Context, id uuid.UUID) (Team, error)
	LowestDivision(ctx context.Context, championshipID uuid.UUID) (Division, error)
	GetSeason(ctx context.Context, id uuid.UUID) (Season, error)
	CreateCareer(ctx context.Context, c Career) (Career, error)
	DeleteCareer(ctx context.Context, id uuid.UUID) error
	UpdateProgress(ctx context.Context, id uuid.UUID, currentRound int, status Status) (Career, error)
}

// Repo implementa l'accesso al DB per le career.
type Repo struct {
	db *sqlx.DB
}

// NewRepo collega il repository a una connessione SQL.
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

const careerColumns = `id, user_id, team_id, season_id, division_id, current_round, budget, reputation, status, created_at`

// ListCareersByUser ritorna le career dell'utente, dalla piu' recente.
func (r *Repo) ListCareersByUser(ctx context.Context, userID uuid.UUID) ([]Career, error) {
	const query = `
SELECT ` + careerColumns + `
FROM careers
WHERE user_id = $1
ORDER BY created_at DESC`

	careers := []Career{}
	if err := r.db.SelectContext(ctx, &careers, query, userID); err != nil {
		slog.Error("errore lettura career utente", "error", err, "user_id", userID)
		return nil, err
	}
	return careers, nil
}

// GetCareer carica una career per id.
func (r *Repo) GetCareer(ctx context.Context, id uuid.UUID) (Career, error) {
	const query = `
SELECT ` + careerColumns + `
FROM careers
WHERE id = $1`

	var c Career
	err := r.db.GetContext(ctx, &c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Career{}, ErrCareerNotFound
	}
	if err != nil {
		slog.Error("errore lettura career", "error", err, "career_id", id)
		return Career{}, err
	}
	return c, nil
}

// GetTeam carica il club con il prestigio.
func (r *Repo) GetTeam(ctx context.Context, id uuid.UUID) (Team, error) {
	const query = `
SELECT id, name, prestige
FROM teams
WHERE id = $1`

	var t Team
	err := r.db.GetContext(ctx, &t, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Team{}, ErrTeamNotFound
	}
	if err != nil {
		slog.Error("errore lettura team", "error", err, "team_id", id)
		return Team{}, err
	}
	return t, nil
}

// LowestDivision ritorna la divisione di livello piu' basso (level ASC) del campionato.
func (r *Repo) LowestDivision(ctx context.Context, championshipID uuid.UUID) (Division, error) {
	const query = `
SELECT id, championship_id, season_id, name, level
FROM divisions
WHERE championship_id = $1
ORDER BY level ASC
LIMIT 1`

	var d Division
	err := r.db.GetContext(ctx, &d, query, championshipID)
	if errors.Is(err, sql.ErrNoRows) {
		return Division{}, ErrDivisionNotFound
	}
	if err != nil {
		slog.Error("errore lettura divisione", "error", err, "championship_id", championshipID)
		return Division{}, err
	}
	return d, nil
}

func (r *Repo) GetSeason(ctx context.Context, id uuid.UUID) (Season, error) {
	const query = `
SELECT id, year
FROM seasons
WHERE id = $1`

	var s Season
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Season{}, ErrSeasonNotFound
	}
	if err != nil {
		slog.Error("errore lettura stagione", "error", err, "season_id", id)
		return Season{}, err
	}
	return s, nil
}

// CreateCareer inserisce la career e ritorna la riga persistita.
func (r *Repo) CreateCareer(ctx context.Context, c Career) (Career, error) {
	const query = `
INSERT INTO careers (
  id,
  user_id,
  team_id,
  season_id,
  division_id,
  current_round,
  budget,
  reputation,
  status,
  created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,now())
RETURNING ` + careerColumns

	var created Career
	err := r.db.GetContext(
		ctx,
		&created,
		query,
		c.ID,
		c.UserID,
		c.TeamID,
		c.SeasonID,
		c.DivisionID,
		c.CurrentRound,
		c.Budget,
		c.Reputation,
		c.Status,
	)
	if err != nil {
		slog.Error("errore insert career", "error", err, "career_id", c.ID)
		return Career{}, err
	}
	return created, nil
}

// DeleteCareer rimuove la career; tactic, lineup e lineup_players vanno
// via con ON DELETE CASCADE.
func (r *Repo) DeleteCareer(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM careers WHERE id = $1`, id)
	if err != nil {
		slog.Error("errore delete career", "error", err, "career_id", id)
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCareerNotFound
	}
	return nil
}

// UpdateProgress aggiorna round e stato. Il vincolo sugli stati terminali
// sta nella WHERE: una career gia' chiusa puo' solo confermare il suo stato.
func (r *Repo) UpdateProgress(ctx context.Context, id uuid.UUID, currentRound int, status Status) (Career, error) {
	const query = `
UPDATE careers
SET current_round = $2, status = $3
WHERE id = $1 AND (status = 'active' OR status = $3)
RETURNING ` + careerColumns

	var updated Career
	err := r.db.GetContext(ctx, &updated, query, id, currentRound, status)
	if errors.Is(err, sql.ErrNoRows) {
		return Career{}, r.missingOrTerminal(ctx, id)
	}
	if err != nil {
		slog.Error("errore update career", "error", err, "career_id", id)
		return Career{}, err
	}
	return updated, nil
}

// missingOrTerminal distingue perche' l'update non ha toccato righe.
func (r *Repo) missingOrTerminal(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM careers WHERE id = $1)`, id); err != nil {
		slog.Error("errore lettura career", "error", err, "career_id", id)
		return err
	}
	if exists {
		return ErrTerminalStatus
	}
	return ErrCareerNotFound
}
