package market

import (
	"context"
	"errors"
	"log/slog"

	"UltimateCareer/pkg/money"
	"UltimateCareer/service/career/internal/apperr"
	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/lock"
	"UltimateCareer/service/career/internal/validate"
	"github.com/google/uuid"
)

// Service gestisce vendite, acquisti e storico trasferimenti di una career.
type Service struct {
	repo   PlayerRepository
	owners career.Authorizer
	locker lock.Manager
	logger *slog.Logger
}

// NewService collega repository, controllo ownership e lock distribuito.
func NewService(repo PlayerRepository, owners career.Authorizer, locker lock.Manager, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, owners: owners, locker: locker, logger: logger}
}

// ListForSale mette in vendita un giocatore della squadra della career.
func (s *Service) ListForSale(ctx context.Context, careerID, requesterID uuid.UUID, input ListForSaleInput) (*Player, error) {
	c, err := s.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(input, inputMessages); err != nil {
		return nil, err
	}
	price, err := parsePrice("asking_price", input.AskingPrice)
	if err != nil {
		return nil, err
	}
	if price.IsZero() {
		return nil, apperr.Validation("Validation failed", apperr.FieldIssue{Field: "asking_price", Message: "Asking price must be at least 1"})
	}

	playerID := uuid.MustParse(input.PlayerID)
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !player.BelongsTo(c.TeamID) {
		return nil, ErrNotOwnPlayer
	}

	updated, err := s.repo.SetForSale(ctx, playerID, true, &price)
	if err != nil {
		return nil, err
	}
	s.logger.Info("giocatore messo in vendita", "career_id", careerID, "player_id", playerID, "asking_price", price.String())
	return &updated, nil
}

// DelistFromSale ritira il giocatore dal mercato e azzera il prezzo.
func (s *Service) DelistFromSale(ctx context.Context, careerID, requesterID, playerID uuid.UUID) (*Player, error) {
	c, err := s.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	player, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !player.BelongsTo(c.TeamID) {
		return nil, ErrNotManageable
	}

	updated, err := s.repo.SetForSale(ctx, playerID, false, nil)
	if err != nil {
		return nil, err
	}
	s.logger.Info("giocatore ritirato dal mercato", "career_id", careerID, "player_id", playerID)
	return &updated, nil
}

// BrowseMarket elenca i giocatori in vendita esclusi quelli della propria squadra.
func (s *Service) BrowseMarket(ctx context.Context, careerID, requesterID uuid.UUID) ([]Player, error) {
	c, err := s.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListForSaleExcluding(ctx, c.TeamID)
}

// TransfersForCareer ritorna i trasferimenti della stagione che coinvolgono la squadra.
func (s *Service) TransfersForCareer(ctx context.Context, careerID, requesterID uuid.UUID) ([]Transfer, error) {
	c, err := s.owners.FindByID(ctx, careerID, requesterID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransfers(ctx, c.SeasonID, c.TeamID)
}

// BuyPlayer acquista un giocatore in vendita per la squadra della career.
// Gli acquisti dello stesso giocatore sono serializzati con il lock Redis.
func (s *Service) BuyPlayer(ctx context.Context, careerID, requesterID uuid.UUID, input BuyInput) (*Purchase, error) {
	if _, err := s.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	if err := validate.Struct(input, inputMessages); err != nil {
		return nil, err
	}
	offer, err := parsePrice("offer_price", input.OfferPrice)
	if err != nil {
		return nil, err
	}
	if s.locker == nil {
		return nil, apperr.Internal(errors.New("redis lock not configured"))
	}

	playerID := uuid.MustParse(input.PlayerID)
	lockKey := lock.PlayerKey(playerID)
	token, ok, err := s.locker.Acquire(ctx, lockKey)
	if err != nil {
		s.logger.Error("errore acquisizione lock redis", "error", err, "player_id", playerID)
		return nil, apperr.Internal(err)
	}
	if !ok {
		return nil, ErrPlayerLocked
	}
	defer func() {
		if err := s.locker.Release(context.Background(), lockKey, token); err != nil {
			s.logger.Warn("errore rilascio lock redis", "error", err, "player_id", playerID)
		}
	}()

	purchase, err := s.repo.Purchase(ctx, careerID, playerID, offer, checkPurchase)
	if err != nil {
		return nil, err
	}
	s.logger.Info("giocatore acquistato", "career_id", careerID, "player_id", playerID, "price", offer.String(), "budget", purchase.Budget.String())
	return &purchase, nil
}

// checkPurchase applica le regole d'acquisto sui dati bloccati in transazione.
func checkPurchase(buyer Buyer, player Player, price money.Value) error {
	if player.BelongsTo(buyer.TeamID) {
		return ErrAlreadyOwned
	}
	if !player.ForSale || player.AskingPrice == nil {
		return ErrNotForSale
	}
	if price.Cmp(*player.AskingPrice) < 0 {
		return ErrOfferTooLow
	}
	if buyer.Budget.Cmp(price) < 0 {
		return ErrInsufficientBudget
	}
	return nil
}

// RecordTransfer registra un trasferimento esterno.
// Il club cedente puo' mancare solo per acquisti e svincolati.
func (s *Service) RecordTransfer(ctx context.Context, input TransferInput) (*Transfer, error) {
	if err := validate.Struct(input, inputMessages); err != nil {
		return nil, err
	}
	price, err := parsePrice("price", input.Price)
	if err != nil {
		return nil, err
	}

	t := Transfer{
		ID:       uuid.New(),
		PlayerID: uuid.MustParse(input.PlayerID),
		ToTeamID: uuid.MustParse(input.ToTeamID),
		SeasonID: uuid.MustParse(input.SeasonID),
		Price:    price,
		Type:     TransferType(input.Type),
	}
	if input.FromTeamID != nil {
		t.FromTeamID = uuid.NullUUID{UUID: uuid.MustParse(*input.FromTeamID), Valid: true}
	}
	if !t.FromTeamID.Valid && !t.Type.AllowsNoSeller() {
		return nil, apperr.Validation("Validation failed", apperr.FieldIssue{
			Field:   "from_team_id",
			Message: "From team is required for sell and loan transfers",
		})
	}

	saved, err := s.repo.InsertTransfer(ctx, t)
	if err != nil {
		return nil, err
	}
	s.logger.Info("trasferimento registrato", "transfer_id", saved.ID, "player_id", saved.PlayerID, "type", saved.Type)
	return &saved, nil
}

// parsePrice converte un importo in MoneyValue, con errore di validazione sul campo.
func parsePrice(field, raw string) (money.Value, error) {
	v, err := money.Parse(raw)
	if err != nil {
		return money.Value{}, apperr.Validation("Validation failed", apperr.FieldIssue{
			Field:   field,
			Message: "Must be a whole amount in digits only, at most 9223372036854775807",
		})
	}
	return v, nil
}
