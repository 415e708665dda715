package api

import (
	"context"

	careerv1 "UltimateCareer/api/careerv1"
	"UltimateCareer/service/career/internal/auth"
	"UltimateCareer/service/career/internal/market"
)

func (s *GRPCServer) ListForSale(ctx context.Context, req *careerv1.ListForSaleRequest) (*careerv1.Player, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("ListForSale", err)
	}
	p, err := s.markets.ListForSale(ctx, careerID, requesterID, market.ListForSaleInput{
		PlayerID:    req.PlayerId,
		AskingPrice: req.AskingPrice,
	})
	if err != nil {
		return nil, s.fail("ListForSale", err)
	}
	return toPlayer(p), nil
}

func (s *GRPCServer) DelistFromSale(ctx context.Context, req *careerv1.DelistFromSaleRequest) (*careerv1.Player, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("DelistFromSale", err)
	}
	playerID, err := parseID("player_id", req.PlayerId)
	if err != nil {
		return nil, s.fail("DelistFromSale", err)
	}
	p, err := s.markets.DelistFromSale(ctx, careerID, requesterID, playerID)
	if err != nil {
		return nil, s.fail("DelistFromSale", err)
	}
	return toPlayer(p), nil
}

func (s *GRPCServer) BrowseMarket(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.PlayersResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("BrowseMarket", err)
	}
	players, err := s.markets.BrowseMarket(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("BrowseMarket", err)
	}
	return &careerv1.PlayersResponse{Players: toPlayers(players)}, nil
}

func (s *GRPCServer) ListTransfers(ctx context.Context, req *careerv1.CareerScopedRequest) (*careerv1.ListTransfersResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("ListTransfers", err)
	}
	transfers, err := s.markets.TransfersForCareer(ctx, careerID, requesterID)
	if err != nil {
		return nil, s.fail("ListTransfers", err)
	}

	out := make([]*careerv1.Transfer, 0, len(transfers))
	for i := range transfers {
		out = append(out, toTransfer(&transfers[i]))
	}
	return &careerv1.ListTransfersResponse{Transfers: out}, nil
}

func (s *GRPCServer) BuyPlayer(ctx context.Context, req *careerv1.BuyPlayerRequest) (*careerv1.BuyPlayerResponse, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	requesterID, careerID, err := scope(ctx, req.CareerId)
	if err != nil {
		return nil, s.fail("BuyPlayer", err)
	}
	purchase, err := s.markets.BuyPlayer(ctx, careerID, requesterID, market.BuyInput{
		PlayerID:   req.PlayerId,
		OfferPrice: req.OfferPrice,
	})
	if err != nil {
		return nil, s.fail("BuyPlayer", err)
	}
	return &careerv1.BuyPlayerResponse{
		Player:   toPlayer(&purchase.Player),
		Transfer: toTransfer(&purchase.Transfer),
		Budget:   purchase.Budget.String(),
	}, nil
}

// RecordTransfer e' riservata agli admin.
func (s *GRPCServer) RecordTransfer(ctx context.Context, req *careerv1.RecordTransferRequest) (*careerv1.Transfer, error) {
	if req == nil {
		return nil, errRequestRequired
	}
	if err := auth.RequireAdmin(ctx); err != nil {
		return nil, s.fail("RecordTransfer", err)
	}
	t, err := s.markets.RecordTransfer(ctx, market.TransferInput{
		PlayerID:   req.PlayerId,
		FromTeamID: req.FromTeamId,
		ToTeamID:   req.ToTeamId,
		SeasonID:   req.SeasonId,
		Price:      req.Price,
		Type:       req.Type,
	})
	if err != nil {
		return nil, s.fail("RecordTransfer", err)
	}
	return toTransfer(t), nil
}
