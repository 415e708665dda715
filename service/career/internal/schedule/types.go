package schedule

import (
	"UltimateCareer/service/career/internal/market"
	"github.com/google/uuid"
)

// Modelli di sola lettura per il contesto di gioco di una career:
// squadre, classifica, giornate e partite della sua divisione.

type Team struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	ShortName string    `db:"short_name"`
	City      string    `db:"city"`
	Stadium   string    `db:"stadium"`
	Prestige  int       `db:"prestige"`
	LogoURL   *string   `db:"logo_url"`
}

// TeamWithPlayers e' la squadra con la rosa completa.
type TeamWithPlayers struct {
	Team
	Players []market.Player
}

// Division porta il numero di squadre e il numero di giornate derivato.
type Division struct {
	ID              uuid.UUID `db:"id"`
	ChampionshipID  uuid.UUID `db:"championship_id"`
	SeasonID        uuid.UUID `db:"season_id"`
	Name            string    `db:"name"`
	Level           int       `db:"level"`
	TotalTeams      int       `db:"total_teams"`
	PromotionSlots  int       `db:"promotion_slots"`
	RelegationSlots int       `db:"relegation_slots"`
	TotalRounds     int       `db:"total_rounds"`
	Status          string    `db:"status"`
}

// TotalRounds e' il numero di giornate di un girone all'italiana andata e ritorno.
func TotalRounds(totalTeams int) int {
	return (totalTeams - 1) * 2
}

type Standing struct {
	ID             uuid.UUID `db:"id"`
	DivisionID     uuid.UUID `db:"division_id"`
	TeamID         uuid.UUID `db:"team_id"`
	TeamName       string    `db:"team_name"`
	Position       int       `db:"position"`
	Points         int       `db:"points"`
	Played         int       `db:"played"`
	Wins           int       `db:"wins"`
	Draws          int       `db:"draws"`
	Losses         int       `db:"losses"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	Form           string    `db:"form"`
}

type Round struct {
	ID         uuid.UUID `db:"id"`
	DivisionID uuid.UUID `db:"division_id"`
	SeasonID   uuid.UUID `db:"season_id"`
	Number     int       `db:"number"`
	Status     string    `db:"status"`
}

// Match e' una partita; i gol restano nil finche' non e' giocata.
type Match struct {
	ID           uuid.UUID `db:"id"`
	RoundID      uuid.UUID `db:"round_id"`
	DivisionID   uuid.UUID `db:"division_id"`
	HomeTeamID   uuid.UUID `db:"home_team_id"`
	HomeTeamName string    `db:"home_team_name"`
	AwayTeamID   uuid.UUID `db:"away_team_id"`
	AwayTeamName string    `db:"away_team_name"`
	HomeGoals    *int      `db:"home_goals"`
	AwayGoals    *int      `db:"away_goals"`
	Attendance   *int      `db:"attendance"`
	Played       bool      `db:"played"`
}

// Involves indica se la squadra gioca la partita.
func (m Match) Involves(teamID uuid.UUID) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

type RoundWithMatches struct {
	Round   Round
	Matches []Match
}

// ResizeInput cambia il numero di squadre di una divisione.
// Il tetto tiene total_rounds ben dentro la colonna integer.
type ResizeInput struct {
	TotalTeams int `json:"total_teams" validate:"gte=2,lte=100"`
}
