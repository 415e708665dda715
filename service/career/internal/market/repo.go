package market

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"UltimateCareer/pkg/money"
	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/db"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PlayerRepository e' l'interfaccia minima di persistenza usata dal servizio.
type PlayerRepository interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (Player, error)
	SetForSale(ctx context.Context, id uuid.UUID, forSale bool, askingPrice *money.Value) (Player, error)
	ListForSaleExcluding(ctx context.Context, teamID uuid.UUID) ([]Player, error)
	ListTransfers(ctx context.Context, seasonID, teamID uuid.UUID) ([]Transfer, error)
	InsertTransfer(ctx context.Context, t Transfer) (Transfer, error)
	Purchase(ctx context.Context, careerID, playerID uuid.UUID, price money.Value, check PurchaseCheck) (Purchase, error)
}

// PurchaseCheck valida l'acquisto sui dati letti dentro la transazione.
type PurchaseCheck func(buyer Buyer, player Player, price money.Value) error

type Repo struct {
	db *sqlx.DB
}

// NewRepo collega il repository a una connessione SQL.
func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// PlayerColumns e' la proiezione comune della tabella players.
const PlayerColumns = `id, name, team_id, position, age, salary, market_value, for_sale, asking_price`

const transferColumns = `id, player_id, from_team_id, to_team_id, season_id, price, type, created_at`

func (r *Repo) GetPlayer(ctx context.Context, id uuid.UUID) (Player, error) {
	return getPlayer(ctx, r.db, id, "")
}

func getPlayer(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID, suffix string) (Player, error) {
	query := `
SELECT ` + PlayerColumns + `
FROM players
WHERE id = $1` + suffix

	var p Player
	err := sqlx.GetContext(ctx, q, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Player{}, ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("errore lettura giocatore", "error", err, "player_id", id)
		return Player{}, err
	}
	return p, nil
}

// SetForSale aggiorna stato di vendita e prezzo richiesto.
func (r *Repo) SetForSale(ctx context.Context, id uuid.UUID, forSale bool, askingPrice *money.Value) (Player, error) {
	const query = `
UPDATE players
SET for_sale = $2, asking_price = $3
WHERE id = $1
RETURNING ` + PlayerColumns

	var p Player
	err := r.db.GetContext(ctx, &p, query, id, forSale, askingPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return Player{}, ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("errore update vendita giocatore", "error", err, "player_id", id)
		return Player{}, err
	}
	return p, nil
}

// ListForSaleExcluding ritorna i giocatori in vendita di altre squadre o svincolati.
func (r *Repo) ListForSaleExcluding(ctx context.Context, teamID uuid.UUID) ([]Player, error) {
	const query = `
SELECT ` + PlayerColumns + `
FROM players
WHERE for_sale = true AND (team_id IS NULL OR team_id <> $1)
ORDER BY market_value DESC, name ASC`

	players := []Player{}
	if err := r.db.SelectContext(ctx, &players, query, teamID); err != nil {
		slog.Error("errore lettura mercato", "error", err, "team_id", teamID)
		return nil, err
	}
	return players, nil
}

// ListTransfers ritorna i trasferimenti della stagione in entrata o uscita dalla squadra.
func (r *Repo) ListTransfers(ctx context.Context, seasonID, teamID uuid.UUID) ([]Transfer, error) {
	const query = `
SELECT ` + transferColumns + `
FROM transfers
WHERE season_id = $1 AND (from_team_id = $2 OR to_team_id = $2)
ORDER BY created_at DESC`

	transfers := []Transfer{}
	if err := r.db.SelectContext(ctx, &transfers, query, seasonID, teamID); err != nil {
		slog.Error("errore lettura trasferimenti", "error", err, "season_id", seasonID, "team_id", teamID)
		return nil, err
	}
	return transfers, nil
}

func (r *Repo) InsertTransfer(ctx context.Context, t Transfer) (Transfer, error) {
	return insertTransfer(ctx, r.db, t)
}

func insertTransfer(ctx context.Context, q sqlx.QueryerContext, t Transfer) (Transfer, error) {
	const query = `
INSERT INTO transfers (id, player_id, from_team_id, to_team_id, season_id, price, type)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + transferColumns

	var out Transfer
	err := sqlx.GetContext(ctx, q, &out, query, t.ID, t.PlayerID, t.FromTeamID, t.ToTeamID, t.SeasonID, t.Price, t.Type)
	if db.IsForeignKeyViolation(err) {
		return Transfer{}, ErrPlayerNotFound
	}
	if err != nil {
		slog.Error("errore insert trasferimento", "error", err, "player_id", t.PlayerID)
		return Transfer{}, err
	}
	return out, nil
}

// Purchase esegue l'acquisto in una transazione: blocca career e giocatore,
// applica check, scala il budget, sposta il giocatore e registra il Transfer.
func (r *Repo) Purchase(ctx context.Context, careerID, playerID uuid.UUID, price money.Value, check PurchaseCheck) (Purchase, error) {
	var result Purchase
	err := db.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		const buyerQuery = `
SELECT id, team_id, season_id, budget
FROM careers
WHERE id = $1
FOR UPDATE`

		var buyer Buyer
		if err := tx.GetContext(ctx, &buyer, buyerQuery, careerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return career.ErrCareerNotFound
			}
			return err
		}

		player, err := getPlayer(ctx, tx, playerID, "\nFOR UPDATE")
		if err != nil {
			return err
		}
		if err := check(buyer, player, price); err != nil {
			return err
		}

		budget, err := buyer.Budget.Sub(price)
		if err != nil {
			return ErrInsufficientBudget
		}
		if _, err := tx.ExecContext(ctx, `UPDATE careers SET budget = $2 WHERE id = $1`, careerID, budget); err != nil {
			return err
		}

		const movePlayer = `
UPDATE players
SET team_id = $2, for_sale = false, asking_price = NULL
WHERE id = $1
RETURNING ` + PlayerColumns

		var moved Player
		if err := tx.GetContext(ctx, &moved, movePlayer, playerID, buyer.TeamID); err != nil {
			return err
		}

		transfer, err := insertTransfer(ctx, tx, Transfer{
			ID:         uuid.New(),
			PlayerID:   playerID,
			FromTeamID: player.TeamID,
			ToTeamID:   buyer.TeamID,
			SeasonID:   buyer.SeasonID,
			Price:      price,
			Type:       TransferBuy,
		})
		if err != nil {
			return err
		}

		result = Purchase{Player: moved, Transfer: transfer, Budget: budget}
		return nil
	})
	if err != nil {
		return Purchase{}, err
	}
	return result, nil
}
