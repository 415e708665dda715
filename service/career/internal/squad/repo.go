package squad

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"UltimateCareer/service/career/internal/db"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository espone la persistenza di tattica e formazione.
type Repository interface {
	GetTacticByCareer(ctx context.Context, careerID uuid.UUID) (Tactic, error)
	CreateTactic(ctx context.Context, t Tactic) (Tactic, error)
	UpdateTactic(ctx context.Context, t Tactic) (Tactic, error)
	GetLineupByCareer(ctx context.Context, careerID uuid.UUID) (Lineup, error)
	ListLineupPlayers(ctx context.Context, lineupID uuid.UUID) ([]LineupPlayer, error)
	ReplaceLineup(ctx context.Context, careerID uuid.UUID, name *string, players []LineupPlayer) (LineupWithPlayers, error)
}

// Repo implementa l'accesso al DB per tattiche e formazioni.
type Repo struct {
	db *sqlx.DB
}

// NewRepo collega il repository a una connessione SQL.
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

const tacticColumns = `id, career_id, formation, style, marking, tempo, passing, pressure`

func (r *Repo) GetTacticByCareer(ctx context.Context, careerID uuid.UUID) (Tactic, error) {
	const query = `
SELECT ` + tacticColumns + `
FROM tactics
WHERE career_id = $1`

	var t Tactic
	err := r.db.GetContext(ctx, &t, query, careerID)
	if errors.Is(err, sql.ErrNoRows) {
		return Tactic{}, ErrTacticNotFound
	}
	if err != nil {
		slog.Error("errore lettura tattica", "error", err, "career_id", careerID)
		return Tactic{}, err
	}
	return t, nil
}

// CreateTactic inserisce la tattica; il vincolo UNIQUE su career_id
// diventa ErrTacticExists.
func (r *Repo) CreateTactic(ctx context.Context, t Tactic) (Tactic, error) {
	const query = `
INSERT INTO tactics (` + tacticColumns + `)
VALUES (:id, :career_id, :formation, :style, :marking, :tempo, :passing, :pressure)
RETURNING ` + tacticColumns

	created, err := namedGet(ctx, r.db, query, t)
	if db.IsUniqueViolation(err) {
		return Tactic{}, ErrTacticExists
	}
	if err != nil {
		slog.Error("errore insert tattica", "error", err, "career_id", t.CareerID)
		return Tactic{}, err
	}
	return created, nil
}

// UpdateTactic aggiorna in place la tattica della career.
func (r *Repo) UpdateTactic(ctx context.Context, t Tactic) (Tactic, error) {
	const query = `
UPDATE tactics
SET formation = :formation, style = :style, marking = :marking, tempo = :tempo, passing = :passing, pressure = :pressure
WHERE career_id = :career_id
RETURNING ` + tacticColumns

	updated, err := namedGet(ctx, r.db, query, t)
	if errors.Is(err, sql.ErrNoRows) {
		return Tactic{}, ErrTacticNotFound
	}
	if err != nil {
		slog.Error("errore update tattica", "error", err, "career_id", t.CareerID)
		return Tactic{}, err
	}
	return updated, nil
}

// namedGet esegue una query con parametri nominali e legge una riga.
func namedGet(ctx context.Context, conn *sqlx.DB, query string, arg Tactic) (Tactic, error) {
	rows, err := conn.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return Tactic{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return Tactic{}, err
		}
		return Tactic{}, sql.ErrNoRows
	}
	var out Tactic
	if err := rows.StructScan(&out); err != nil {
		return Tactic{}, err
	}
	return out, rows.Err()
}

func (r *Repo) GetLineupByCareer(ctx context.Context, careerID uuid.UUID) (Lineup, error) {
	const query = `
SELECT id, career_id, name
FROM lineups
WHERE career_id = $1`

	var l Lineup
	err := r.db.GetContext(ctx, &l, query, careerID)
	if errors.Is(err, sql.ErrNoRows) {
		return Lineup{}, ErrLineupNotFound
	}
	if err != nil {
		slog.Error("errore lettura formazione", "error", err, "career_id", careerID)
		return Lineup{}, err
	}
	return l, nil
}

func (r *Repo) ListLineupPlayers(ctx context.Context, lineupID uuid.UUID) ([]LineupPlayer, error) {
	return listLineupPlayers(ctx, r.db, lineupID)
}

const lineupPlayersQuery = `
SELECT lp.id, lp.lineup_id, lp.player_id, lp.position_slot, lp.is_starter,
       p.name AS player_name, p.position AS player_position
FROM lineup_players lp
JOIN players p ON p.id = lp.player_id
WHERE lp.lineup_id = $1
ORDER BY lp.is_starter DESC, lp.position_slot ASC`

func listLineupPlayers(ctx context.Context, q sqlx.QueryerContext, lineupID uuid.UUID) ([]LineupPlayer, error) {
	players := []LineupPlayer{}
	if err := sqlx.SelectContext(ctx, q, &players, lineupPlayersQuery, lineupID); err != nil {
		slog.Error("errore lettura giocatori formazione", "error", err, "lineup_id", lineupID)
		return nil, err
	}
	return players, nil
}

// ReplaceLineup sostituisce la rosa in un'unica transazione:
// lock per career, find-or-create della lineup, delete di tutte le righe,
// insert della nuova rosa. Un errore a meta' lascia la rosa precedente.
func (r *Repo) ReplaceLineup(ctx context.Context, careerID uuid.UUID, name *string, players []LineupPlayer) (LineupWithPlayers, error) {
	var result LineupWithPlayers
	err := db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Serializza le setLineup concorrenti sulla stessa career.
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, careerID.String()); err != nil {
			return err
		}

		const upsertLineup = `
INSERT INTO lineups (id, career_id, name)
VALUES ($1, $2, $3)
ON CONFLICT (career_id) DO UPDATE SET name = COALESCE(EXCLUDED.name, lineups.name)
RETURNING id, career_id, name`

		var lineup Lineup
		if err := tx.GetContext(ctx, &lineup, upsertLineup, uuid.New(), careerID, name); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM lineup_players WHERE lineup_id = $1`, lineup.ID); err != nil {
			return err
		}

		if len(players) > 0 {
			rows := make([]LineupPlayer, len(players))
			for i, p := range players {
				p.ID = uuid.New()
				p.LineupID = lineup.ID
				rows[i] = p
			}
			const insertPlayers = `
INSERT INTO lineup_players (id, lineup_id, player_id, position_slot, is_starter)
VALUES (:id, :lineup_id, :player_id, :position_slot, :is_starter)`
			if _, err := tx.NamedExecContext(ctx, insertPlayers, rows); err != nil {
				if db.IsForeignKeyViolation(err) {
					return ErrPlayerNotFound
				}
				return err
			}
		}

		saved, err := listLineupPlayers(ctx, tx, lineup.ID)
		if err != nil {
			return err
		}
		result = LineupWithPlayers{Lineup: lineup, Players: saved}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPlayerNotFound) {
			slog.Error("errore sostituzione formazione", "error", err, "career_id", careerID)
		}
		return LineupWithPlayers{}, err
	}
	return result, nil
}
