package careerv1

// Messaggi del contratto career.v1. Viaggiano come JSON (codec "json" di
// pkg/grpcx); gli importi sono sempre stringhe decimali intere.

// CareerScopedRequest identifica la career su cui opera la chiamata.
type CareerScopedRequest struct {
	CareerId string `json:"career_id"`
}

type Career struct {
	Id            string `json:"id"`
	UserId        string `json:"user_id"`
	TeamId        string `json:"team_id"`
	SeasonId      string `json:"season_id"`
	DivisionId    string `json:"division_id"`
	CurrentRound  int32  `json:"current_round"`
	Budget        string `json:"budget"`
	Reputation    int32  `json:"reputation"`
	Status        string `json:"status"`
	CreatedAtUnix int64  `json:"created_at_unix"`
}

type ListCareersRequest struct{}

type ListCareersResponse struct {
	Careers []*Career `json:"careers"`
}

type GetCareerRequest struct {
	CareerId string `json:"career_id"`
}

type CreateCareerRequest struct {
	ChampionshipId string `json:"championship_id"`
	TeamId         string `json:"team_id"`
}

type DeleteCareerRequest struct {
	CareerId string `json:"career_id"`
}

type DeleteCareerResponse struct{}

// UpdateProgressRequest e' riservata al processo che chiude giornate e stagioni.
type UpdateProgressRequest struct {
	CareerId     string `json:"career_id"`
	CurrentRound int32  `json:"current_round"`
	Status       string `json:"status"`
}

type Tactic struct {
	Id        string `json:"id"`
	CareerId  string `json:"career_id"`
	Formation string `json:"formation"`
	Style     string `json:"style"`
	Marking   string `json:"marking"`
	Tempo     string `json:"tempo"`
	Passing   string `json:"passing"`
	Pressure  string `json:"pressure"`
}

// TacticRequest porta solo i campi da impostare; quelli assenti restano
// invariati (upsert) o prendono il default (create).
type TacticRequest struct {
	CareerId  string  `json:"career_id"`
	Formation *string `json:"formation,omitempty"`
	Style     *string `json:"style,omitempty"`
	Marking   *string `json:"marking,omitempty"`
	Tempo     *string `json:"tempo,omitempty"`
	Passing   *string `json:"passing,omitempty"`
	Pressure  *string `json:"pressure,omitempty"`
}

type LineupPlayer struct {
	Id             string `json:"id"`
	PlayerId       string `json:"player_id"`
	PositionSlot   string `json:"position_slot"`
	IsStarter      bool   `json:"is_starter"`
	PlayerName     string `json:"player_name"`
	PlayerPosition string `json:"player_position"`
}

type Lineup struct {
	Id       string          `json:"id"`
	CareerId string          `json:"career_id"`
	Name     *string         `json:"name,omitempty"`
	Players  []*LineupPlayer `json:"players"`
}

// GetLineupResponse ha Lineup nil finche' la career non ha mai salvato una formazione.
type GetLineupResponse struct {
	Lineup *Lineup `json:"lineup,omitempty"`
}

type LineupEntry struct {
	PlayerId     string `json:"player_id"`
	PositionSlot string `json:"position_slot"`
}

type SetLineupRequest struct {
	CareerId string         `json:"career_id"`
	Name     *string        `json:"name,omitempty"`
	Starters []*LineupEntry `json:"starters"`
	Reserves []*LineupEntry `json:"reserves"`
}

// Player ha TeamId vuoto per gli svincolati e AskingPrice vuoto se non in vendita.
type Player struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	TeamId      string `json:"team_id,omitempty"`
	Position    string `json:"position"`
	Age         int32  `json:"age"`
	Salary      string `json:"salary"`
	MarketValue string `json:"market_value"`
	ForSale     bool   `json:"for_sale"`
	AskingPrice string `json:"asking_price,omitempty"`
}

type ListForSaleRequest struct {
	CareerId    string `json:"career_id"`
	PlayerId    string `json:"player_id"`
	AskingPrice string `json:"asking_price"`
}

type DelistFromSaleRequest struct {
	CareerId string `json:"career_id"`
	PlayerId string `json:"player_id"`
}

type PlayersResponse struct {
	Players []*Player `json:"players"`
}

type Transfer struct {
	Id            string `json:"id"`
	PlayerId      string `json:"player_id"`
	FromTeamId    string `json:"from_team_id,omitempty"`
	ToTeamId      string `json:"to_team_id"`
	SeasonId      string `json:"season_id"`
	Price         string `json:"price"`
	Type          string `json:"type"`
	CreatedAtUnix int64  `json:"created_at_unix"`
}

type ListTransfersResponse struct {
	Transfers []*Transfer `json:"transfers"`
}

type BuyPlayerRequest struct {
	CareerId   string `json:"career_id"`
	PlayerId   string `json:"player_id"`
	OfferPrice string `json:"offer_price"`
}

type BuyPlayerResponse struct {
	Player   *Player   `json:"player"`
	Transfer *Transfer `json:"transfer"`
	Budget   string    `json:"budget"`
}

// RecordTransferRequest e' riservata agli amministratori.
type RecordTransferRequest struct {
	PlayerId   string  `json:"player_id"`
	FromTeamId *string `json:"from_team_id,omitempty"`
	ToTeamId   string  `json:"to_team_id"`
	SeasonId   string  `json:"season_id"`
	Price      string  `json:"price"`
	Type       string  `json:"type"`
}

type Team struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	City      string    `json:"city"`
	Stadium   string    `json:"stadium"`
	Prestige  int32     `json:"prestige"`
	LogoUrl   string    `json:"logo_url,omitempty"`
	Players   []*Player `json:"players,omitempty"`
}

type ListTeamsResponse struct {
	Teams []*Team `json:"teams"`
}

type GetTeamRequest struct {
	CareerId string `json:"career_id"`
	TeamId   string `json:"team_id"`
}

type GetPlayerRequest struct {
	CareerId string `json:"career_id"`
	PlayerId string `json:"player_id"`
}

type Standing struct {
	TeamId         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Position       int32  `json:"position"`
	Points         int32  `json:"points"`
	Played         int32  `json:"played"`
	Wins           int32  `json:"wins"`
	Draws          int32  `json:"draws"`
	Losses         int32  `json:"losses"`
	GoalsFor       int32  `json:"goals_for"`
	GoalsAgainst   int32  `json:"goals_against"`
	GoalDifference int32  `json:"goal_difference"`
	Form           string `json:"form"`
}

type ListStandingsResponse struct {
	Standings []*Standing `json:"standings"`
}

type Round struct {
	Id       string   `json:"id"`
	Number   int32    `json:"number"`
	Status   string   `json:"status"`
	Matches  []*Match `json:"matches,omitempty"`
	SeasonId string   `json:"season_id"`
}

type ListRoundsResponse struct {
	Rounds []*Round `json:"rounds"`
}

type GetRoundRequest struct {
	CareerId string `json:"career_id"`
	Number   int32  `json:"number"`
}

// Match ha i gol a nil finche' la partita non e' giocata.
type Match struct {
	Id           string `json:"id"`
	RoundId      string `json:"round_id"`
	HomeTeamId   string `json:"home_team_id"`
	HomeTeamName string `json:"home_team_name"`
	AwayTeamId   string `json:"away_team_id"`
	AwayTeamName string `json:"away_team_name"`
	HomeGoals    *int32 `json:"home_goals,omitempty"`
	AwayGoals    *int32 `json:"away_goals,omitempty"`
	Attendance   *int32 `json:"attendance,omitempty"`
	Played       bool   `json:"played"`
}

type GetMatchRequest struct {
	CareerId string `json:"career_id"`
	MatchId  string `json:"match_id"`
}

// NextMatchResponse ha Match nil quando non c'e' una partita da giocare.
type NextMatchResponse struct {
	Match *Match `json:"match,omitempty"`
}

type Division struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Level       int32  `json:"level"`
	TotalTeams  int32  `json:"total_teams"`
	TotalRounds int32  `json:"total_rounds"`
	Status      string `json:"status"`
}

// ResizeDivisionRequest e' riservata agli amministratori.
type ResizeDivisionRequest struct {
	DivisionId string `json:"division_id"`
	TotalTeams int32  `json:"total_teams"`
}
