package squad

import (
	"github.com/google/uuid"
)

// Modelli del dominio "squad": una tattica e una formazione per career.

// Insiemi chiusi dei valori tattici, allineati ai tag oneof di TacticInput.
var (
	Formations = []string{"3-5-2", "3-4-3", "4-4-2", "4-3-3", "4-5-1", "4-2-3-1", "4-3-2-1", "4-1-3-2", "5-4-1", "5-3-2", "3-4-1-2", "3-3-3-1", "4-2-4", "4-1-4-1"}
	Styles     = []string{"ultra_defensive", "defensive", "moderate", "offensive", "ultra_offensive"}
	Markings   = []string{"zone", "man_to_man"}
	Tempos     = []string{"slow", "normal", "fast"}
	Passings   = []string{"short", "mixed", "long"}
	Pressures  = []string{"low", "normal", "high"}
)

const (
	DefaultFormation = "4-4-2"
	DefaultStyle     = "moderate"
	DefaultMarking   = "zone"
	DefaultTempo     = "normal"
	DefaultPassing   = "mixed"
	DefaultPressure  = "normal"
)

// Vincoli di forma della rosa per la partita.
const (
	StartersCount = 11
	MaxReserves   = 12
)

// Tactic e' la configurazione tattica, una per career.
type Tactic struct {
	ID        uuid.UUID `db:"id"`
	CareerID  uuid.UUID `db:"career_id"`
	Formation string    `db:"formation"`
	Style     string    `db:"style"`
	Marking   string    `db:"marking"`
	Tempo     string    `db:"tempo"`
	Passing   string    `db:"passing"`
	Pressure  string    `db:"pressure"`
}

// TacticInput e' un aggiornamento parziale: i campi nil restano invariati.
type TacticInput struct {
	Formation *string `json:"formation" validate:"omitempty,oneof=3-5-2 3-4-3 4-4-2 4-3-3 4-5-1 4-2-3-1 4-3-2-1 4-1-3-2 5-4-1 5-3-2 3-4-1-2 3-3-3-1 4-2-4 4-1-4-1"`
	Style     *string `json:"style" validate:"omitempty,oneof=ultra_defensive defensive moderate offensive ultra_offensive"`
	Marking   *string `json:"marking" validate:"omitempty,oneof=zone man_to_man"`
	Tempo     *string `json:"tempo" validate:"omitempty,oneof=slow normal fast"`
	Passing   *string `json:"passing" validate:"omitempty,oneof=short mixed long"`
	Pressure  *string `json:"pressure" validate:"omitempty,oneof=low normal high"`
}

var tacticMessages = map[string]string{
	"formation": "Invalid formation",
	"style":     "Invalid style",
	"marking":   "Invalid marking",
	"tempo":     "Invalid tempo",
	"passing":   "Invalid passing",
	"pressure":  "Invalid pressure",
}

// defaultTactic ritorna la tattica di partenza per una career.
func defaultTactic(careerID uuid.UUID) Tactic {
	return Tactic{
		ID:        uuid.New(),
		CareerID:  careerID,
		Formation: DefaultFormation,
		Style:     DefaultStyle,
		Marking:   DefaultMarking,
		Tempo:     DefaultTempo,
		Passing:   DefaultPassing,
		Pressure:  DefaultPressure,
	}
}

// apply copia sulla tattica solo i campi presenti nell'input.
func (in TacticInput) apply(t *Tactic) {
	if in.Formation != nil {
		t.Formation = *in.Formation
	}
	if in.Style != nil {
		t.Style = *in.Style
	}
	if in.Marking != nil {
		t.Marking = *in.Marking
	}
	if in.Tempo != nil {
		t.Tempo = *in.Tempo
	}
	if in.Passing != nil {
		t.Passing = *in.Passing
	}
	if in.Pressure != nil {
		t.Pressure = *in.Pressure
	}
}

// Lineup e' la formazione della career; Name e' opzionale.
type Lineup struct {
	ID       uuid.UUID `db:"id"`
	CareerID uuid.UUID `db:"career_id"`
	Name     *string   `db:"name"`
}

// LineupPlayer e' un giocatore convocato: titolare o riserva.
type LineupPlayer struct {
	ID             uuid.UUID `db:"id"`
	LineupID       uuid.UUID `db:"lineup_id"`
	PlayerID       uuid.UUID `db:"player_id"`
	PositionSlot   string    `db:"position_slot"`
	IsStarter      bool      `db:"is_starter"`
	PlayerName     string    `db:"player_name"`
	PlayerPosition string    `db:"player_position"`
}

// LineupWithPlayers e' la formazione con la rosa completa.
type LineupWithPlayers struct {
	Lineup  Lineup
	Players []LineupPlayer
}

// Starters conta i titolari.
func (l LineupWithPlayers) Starters() int {
	n := 0
	for _, p := range l.Players {
		if p.IsStarter {
			n++
		}
	}
	return n
}

// LineupEntry e' un giocatore nella richiesta di formazione.
type LineupEntry struct {
	PlayerID     string `json:"player_id" validate:"required,uuid"`
	PositionSlot string `json:"position_slot" validate:"required,min=1,max=10"`
}

// SetLineupInput sostituisce per intero la rosa della formazione.
// Name nil lascia invariato il nome esistente.
type SetLineupInput struct {
	Name     *string       `json:"name" validate:"omitempty,max=50"`
	Starters []LineupEntry `json:"starters" validate:"len=11,dive"`
	Reserves []LineupEntry `json:"reserves" validate:"max=12,dive"`
}

var lineupMessages = map[string]string{
	"starters.len":      "Must have exactly 11 starters",
	"reserves.max":      "Maximum 12 reserves",
	"player_id":         "Player ID must be a valid UUID",
	"position_slot.max": "Position slot must be at most 10 characters",
	"name.max":          "Name must be at most 50 characters",
}
