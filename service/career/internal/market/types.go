package market

import (
	"time"

	"UltimateCareer/pkg/money"
	"github.com/google/uuid"
)

// Player e' la vista del giocatore usata da mercato e rosa.
// TeamID non valido = svincolato; AskingPrice nil quando non e' in vendita.
type Player struct {
	ID          uuid.UUID     `db:"id"`
	Name        string        `db:"name"`
	TeamID      uuid.NullUUID `db:"team_id"`
	Position    string        `db:"position"`
	Age         int           `db:"age"`
	Salary      money.Value   `db:"salary"`
	MarketValue money.Value   `db:"market_value"`
	ForSale     bool          `db:"for_sale"`
	AskingPrice *money.Value  `db:"asking_price"`
}

// BelongsTo indica se il giocatore e' tesserato per la squadra.
func (p Player) BelongsTo(teamID uuid.UUID) bool {
	return p.TeamID.Valid && p.TeamID.UUID == teamID
}

// TransferType e' il tipo di trasferimento registrato.
type TransferType string

const (
	TransferBuy  TransferType = "buy"
	TransferSell TransferType = "sell"
	TransferFree TransferType = "free"
	TransferLoan TransferType = "loan"
)

// AllowsNoSeller indica i tipi per cui il club cedente puo' mancare.
func (t TransferType) AllowsNoSeller() bool {
	return t == TransferFree || t == TransferBuy
}

// Transfer e' un movimento di mercato in una stagione.
type Transfer struct {
	ID         uuid.UUID     `db:"id"`
	PlayerID   uuid.UUID     `db:"player_id"`
	FromTeamID uuid.NullUUID `db:"from_team_id"`
	ToTeamID   uuid.UUID     `db:"to_team_id"`
	SeasonID   uuid.UUID     `db:"season_id"`
	Price      money.Value   `db:"price"`
	Type       TransferType  `db:"type"`
	CreatedAt  time.Time     `db:"created_at"`
}

// Buyer e' lo stato della career acquirente letto sotto lock.
type Buyer struct {
	CareerID uuid.UUID   `db:"id"`
	TeamID   uuid.UUID   `db:"team_id"`
	SeasonID uuid.UUID   `db:"season_id"`
	Budget   money.Value `db:"budget"`
}

// Purchase e' l'esito di un acquisto andato a buon fine.
type Purchase struct {
	Player   Player
	Transfer Transfer
	Budget   money.Value
}

// ListForSaleInput mette in vendita un giocatore della propria squadra.
type ListForSaleInput struct {
	PlayerID    string `json:"player_id" validate:"required,uuid"`
	AskingPrice string `json:"asking_price" validate:"required"`
}

// BuyInput e' l'offerta per un giocatore in vendita.
type BuyInput struct {
	PlayerID   string `json:"player_id" validate:"required,uuid"`
	OfferPrice string `json:"offer_price" validate:"required"`
}

// TransferInput registra un trasferimento arrivato da fuori (es. fine stagione).
type TransferInput struct {
	PlayerID   string  `json:"player_id" validate:"required,uuid"`
	FromTeamID *string `json:"from_team_id" validate:"omitempty,uuid"`
	ToTeamID   string  `json:"to_team_id" validate:"required,uuid"`
	SeasonID   string  `json:"season_id" validate:"required,uuid"`
	Price      string  `json:"price" validate:"required"`
	Type       string  `json:"type" validate:"required,oneof=buy sell free loan"`
}

var inputMessages = map[string]string{
	"player_id":    "Player ID must be a valid UUID",
	"from_team_id": "From team ID must be a valid UUID",
	"to_team_id":   "To team ID must be a valid UUID",
	"season_id":    "Season ID must be a valid UUID",
	"type":         "Invalid transfer type",
}
