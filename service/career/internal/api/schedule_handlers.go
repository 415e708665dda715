package api

import (
	"context"

	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/auth"
	"UltimateCareer/service/career/internal/schedule"
)

func (s *GRPCServer) ListDivisionTeams(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.ListTeamsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("ListDivisionTeams", err)
	}
	teams, err := s.schedules.DivisionTeams(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("ListDivisionTeams", err)
	}

	out := make([]*careerv1.Team, 0, len(teams))
	for i := range teams {
		out = append(out, toTeam(&teams[i], nil))
	}
	return &careerv1.ListTeamsResponse{Teams: out}, nil
}

func (s *GRPCServer) GetMyTeam(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.Team, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetMyTeam", err)
	}
	team, err := s.schedules.MyTeam(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("GetMyTeam", err)
	}
	return toTeam(&team.Team, team.Players), nil
}

func (s *GRPCServer) GetTeam(ctx context.Context, req *careerv1.GetTeamRequest) (*careerv1.Team, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetTeam", err)
	}
	teamID, err := parseID("team_id", req.TeamId)
	if err != nil {
		return nil, s.fail("GetTeam", err)
	}
	team, err := s.schedules.TeamByID(ctx, careerID, requesterID, teamID)
	if err != nil {
		return nil, s.fail("GetTeam", err)
	}
	return toTeam(&team.Team, team.Players), nil
}

func (s *GRPCServer) ListSquadPlayers(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.PlayersResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("ListSquadPlayers", err)
	}
	players, err := s.schedules.SquadPlayers(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("ListSquadPlayers", err)
	}
	return &careerv1.PlayersResponse{Players: toPlayers(players)}, nil
}

func (s *GRPCServer) GetPlayer(ctx context.Context, req *careerv1.GetPlayerRequest) (*careerv1.Player, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetPlayer", err)
	}
	playerID, err := parseID("player_id", req.PlayerId)
	if err != nil {
		return nil, s.fail("GetPlayer", err)
	}
	p, err := s.schedules.PlayerByID(ctx, careerID, requesterID, playerID)
	if err != nil {
		return nil, s.fail("GetPlayer", err)
	}
	return toPlayer(p), nil
}

func (s *GRPCServer) ListStandings(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.ListStandingsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("ListStandings", err)
	}
	standings, err := s.schedules.Standings(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("ListStandings", err)
	}

	out := make([]*careerv1.Standing, 0, len(standings))
	for i := range standings {
		out = append(out, toStanding(&standings[i]))
	}
	return &careerv1.ListStandingsResponse{Standings: out}, nil
}

func (s *GRPCServer) ListRounds(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.ListRoundsResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("ListRounds", err)
	}
	rounds, err := s.schedules.Rounds(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("ListRounds", err)
	}

	out := make([]*careerv1.Round, 0, len(rounds))
	for i := range rounds {
		out = append(out, toRound(&rounds[i], nil))
	}
	return &careerv1.ListRoundsResponse{Rounds: out}, nil
}

func (s *GRPCServer) GetRound(ctx context.Context, req *careerv1.GetRoundRequest) (*careerv1.Round, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetRound", err)
	}
	round, err := s.schedules.RoundByNumber(ctx, careerID, requesterID, int(req.Number))
	if err != nil {
		return nil, s.fail("GetRound", err)
	}
	return toRound(&round.Round, round.Matches), nil
}

func (s *GRPCServer) GetMatch(ctx context.Context, req *careerv1.GetMatchRequest) (*careerv1.Match, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetMatch", err)
	}
	matchID, err := parseID("match_id", req.MatchId)
	if err != nil {
		return nil, s.fail("GetMatch", err)
	}
	m, err := s.schedules.MatchByID(ctx, careerID, requesterID, matchID)
	if err != nil {
		return nil, s.fail("GetMatch", err)
	}
	return toMatch(m), nil
}

// GetNextMatch risponde OK senza match quando non c'e' nulla da giocare.
func (s *GRPCServer) GetNextMatch(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.NextMatchResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("GetNextMatch", err)
	}
	m, err := s.schedules.NextMatch(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("GetNextMatch", err)
	}
	if m == nil {
		return &careerv1.NextMatchResponse{}, nil
	}
	return &careerv1.NextMatchResponse{Match: toMatch(m)}, nil
}

// ResizeDivision e' riservata agli admin.
func (s *GRPCServer) ResizeDivision(ctx context.Context, req *careerv1.ResizeDivisionRequest) (*careerv1.Division, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	if err := auth.RequireAdmin(ctx); err != nil {
		return nil, s.fail("ResizeDivision", err)
	}
	divisionID, err := parseID("division_id", req.DivisionId)
	if err != nil {
		return nil, s.fail("ResizeDivision", err)
	}
	d, err := s.schedules.ResizeDivision(ctx, divisionID, schedule.ResizeInput{TotalTeams: int(req.TotalTeams)})
	if err != nil {
		return nil, s.fail("ResizeDivision", err)
	}
	return toDivision(d), nil
}
