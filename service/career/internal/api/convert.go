package api

import (
	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/market"
	"UltimateCareer/service/career/internal/schedule"
	"UltimateCareer/service/career/internal/squad"
)

// Conversioni dominio -> messaggi career.v1.

func toCareer(c *career.Career) *careerv1.Career {
	return &careerv1.Career{
		Id:            c.ID.String(),
		UserId:        c.UserID.String(),
		TeamId:        c.TeamID.String(),
		SeasonId:      c.SeasonID.String(),
		DivisionId:    c.DivisionID.String(),
		CurrentRound:  int32(c.CurrentRound),
		Budget:        c.Budget.String(),
		Reputation:    int32(c.Reputation),
		Status:        string(c.Status),
		CreatedAtUnix: c.CreatedAt.Unix(),
	}
}

func toTactic(t *squad.Tactic) *careerv1.Tactic {
	return &careerv1.Tactic{
		Id:        t.ID.String(),
		CareerId:  t.CareerID.String(),
		Formation: t.Formation,
		Style:     t.Style,
		Marking:   t.Marking,
		Tempo:     t.Tempo,
		Passing:   t.Passing,
		Pressure:  t.Pressure,
	}
}

func toLineup(l *squad.LineupWithPlayers) *careerv1.Lineup {
	players := make([]*careerv1.LineupPlayer, 0, len(l.Players))
	for _, p := range l.Players {
		players = append(players, &careerv1.LineupPlayer{
			Id:             p.ID.String(),
			PlayerId:       p.PlayerID.String(),
			PositionSlot:   p.PositionSlot,
			IsStarter:      p.IsStarter,
			PlayerName:     p.PlayerName,
			PlayerPosition: p.PlayerPosition,
		})
	}
	return &careerv1.Lineup{
		Id:       l.Lineup.ID.String(),
		CareerId: l.Lineup.CareerID.String(),
		Name:     l.Lineup.Name,
		Players:  players,
	}
}

func toPlayer(p *market.Player) *careerv1.Player {
	out := &careerv1.Player{
		Id:          p.ID.String(),
		Name:        p.Name,
		Position:    p.Position,
		Age:         int32(p.Age),
		Salary:      p.Salary.String(),
		MarketValue: p.MarketValue.String(),
		ForSale:     p.ForSale,
	}
	if p.TeamID.Valid {
		out.TeamId = p.TeamID.UUID.String()
	}
	if p.AskingPrice != nil {
		out.AskingPrice = p.AskingPrice.String()
	}
	return out
}

func toPlayers(players []market.Player) []*careerv1.Player {
	out := make([]*careerv1.Player, 0, len(players))
	for i := range players {
		out = append(out, toPlayer(&players[i]))
	}
	return out
}

func toTransfer(t *market.Transfer) *careerv1.Transfer {
	out := &careerv1.Transfer{
		Id:            t.ID.String(),
		PlayerId:      t.PlayerID.String(),
		ToTeamId:      t.ToTeamID.String(),
		SeasonId:      t.SeasonID.String(),
		Price:         t.Price.String(),
		Type:          string(t.Type),
		CreatedAtUnix: t.CreatedAt.Unix(),
	}
	if t.FromTeamID.Valid {
		out.FromTeamId = t.FromTeamID.UUID.String()
	}
	return out
}

func toTeam(t *schedule.Team, players []market.Player) *careerv1.Team {
	out := &careerv1.Team{
		Id:        t.ID.String(),
		Name:      t.Name,
		ShortName: t.ShortName,
		City:      t.City,
		Stadium:   t.Stadium,
		Prestige:  int32(t.Prestige),
	}
	if t.LogoURL != nil {
		out.LogoUrl = *t.LogoURL
	}
	if players != nil {
		out.Players = toPlayers(players)
	}
	return out
}

func toStanding(s *schedule.Standing) *careerv1.Standing {
	return &careerv1.Standing{
		TeamId:         s.TeamID.String(),
		TeamName:       s.TeamName,
		Position:       int32(s.Position),
		Points:         int32(s.Points),
		Played:         int32(s.Played),
		Wins:           int32(s.Wins),
		Draws:          int32(s.Draws),
		Losses:         int32(s.Losses),
		GoalsFor:       int32(s.GoalsFor),
		GoalsAgainst:   int32(s.GoalsAgainst),
		GoalDifference: int32(s.GoalDifference),
		Form:           s.Form,
	}
}

func toRound(r *schedule.Round, matches []schedule.Match) *careerv1.Round {
	out := &careerv1.Round{
		Id:       r.ID.String(),
		Number:   int32(r.Number),
		Status:   r.Status,
		SeasonId: r.SeasonID.String(),
	}
	for i := range matches {
		out.Matches = append(out.Matches, toMatch(&matches[i]))
	}
	return out
}

func toMatch(m *schedule.Match) *careerv1.Match {
	return &careerv1.Match{
		Id:           m.ID.String(),
		RoundId:      m.RoundID.String(),
		HomeTeamId:   m.HomeTeamID.String(),
		HomeTeamName: m.HomeTeamName,
		AwayTeamId:   m.AwayTeamID.String(),
		AwayTeamName: m.AwayTeamName,
		HomeGoals:    optionalInt32(m.HomeGoals),
		AwayGoals:    optionalInt32(m.AwayGoals),
		Attendance:   optionalInt32(m.Attendance),
		Played:       m.Played,
	}
}

func toDivision(d *schedule.Division) *careerv1.Division {
	return &careerv1.Division{
		Id:          d.ID.String(),
		Name:        d.Name,
		Level:       int32(d.Level),
		TotalTeams:  int32(d.TotalTeams),
		TotalRounds: int32(d.TotalRounds),
		Status:      d.Status,
	}
}

// optionalInt32 preserva l'assenza del valore (partita non giocata).
func optionalInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func toTacticInput(req *careerv1.TacticRequest) squad.TacticInput {
	return squad.TacticInput{
		Formation: req.Formation,
		Style:     req.Style,
		Marking:   req.Marking,
		Tempo:     req.Tempo,
		Passing:   req.Passing,
		Pressure:  req.Pressure,
	}
}

func toLineupEntries(entries []*careerv1.LineupEntry) []squad.LineupEntry {
	out := make([]squad.LineupEntry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		out = append(out, squad.LineupEntry{PlayerID: e.PlayerId, PositionSlot: e.PositionSlot})
	}
	return out
}
