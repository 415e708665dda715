package career

import (
	"context"
	"log/slog"

	"UltimateCareer/pkg/money"
	"UltimateCareer/service/career/internal/apperr"
	"UltimateCareer/service/career/internal/validate"
	"github.com/google/uuid"
)

// budgetPerPrestige: ogni punto di prestigio vale 100 milioni di budget iniziale.
const budgetPerPrestige = 100_000_000

// maxReputation e' il tetto della reputazione; il budget non ha tetto.
const maxReputation = 100

// Service gestisce il ciclo di vita delle career.
type Service struct {
	repo   CareerRepository
	guard  *Guard
	logger *slog.Logger
}

// NewService crea il servizio di dominio per le career.
func NewService(repo CareerRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, guard: NewGuard(repo), logger: logger}
}

// FindAllByUser ritorna le career dell'utente, dalla piu' recente.
func (s *Service) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]Career, error) {
	return s.repo.ListCareersByUser(ctx, userID)
}

// FindByID carica la career e verifica l'ownership.
func (s *Service) FindByID(ctx context.Context, id, requesterID uuid.UUID) (*Career, error) {
	return s.guard.Authorize(ctx, id, requesterID)
}

// Create risolve club, divisione e stagione e crea la career in stato active.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*Career, error) {
	if err := validate.Struct(input, map[string]string{
		"championship_id": "Championship ID must be a valid UUID",
		"team_id":         "Team ID must be a valid UUID",
	}); err != nil {
		return nil, err
	}
	teamID := uuid.MustParse(input.TeamID)
	championshipID := uuid.MustParse(input.ChampionshipID)

	// 1) Club scelto.
	team, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// 2) Divisione di livello piu' basso del campionato.
	division, err := s.repo.LowestDivision(ctx, championshipID)
	if err != nil {
		return nil, err
	}

	// 3) Stagione della divisione (con FK non dovrebbe mancare).
	season, err := s.repo.GetSeason(ctx, division.SeasonID)
	if err != nil {
		return nil, err
	}

	// 4) Budget e reputazione dal prestigio, in aritmetica intera.
	budget, reputation, err := initialFinances(team.Prestige)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateCareer(ctx, Career{
		ID:           uuid.New(),
		UserID:       userID,
		TeamID:       team.ID,
		SeasonID:     season.ID,
		DivisionID:   division.ID,
		CurrentRound: 1,
		Budget:       budget,
		Reputation:   reputation,
		Status:       StatusActive,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("career creata", "career_id", created.ID, "user_id", userID, "team_id", team.ID, "budget", created.Budget.String())
	return &created, nil
}

// Delete verifica l'ownership e rimuove la career.
func (s *Service) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	c, err := s.guard.Authorize(ctx, id, requesterID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCareer(ctx, c.ID); err != nil {
		return err
	}
	s.logger.Info("career eliminata", "career_id", c.ID, "user_id", requesterID)
	return nil
}

// UpdateProgress e' il punto d'ingresso per chi avanza le giornate e chiude
// la stagione. Non e' legato a un utente: chi chiama e' un processo interno.
func (s *Service) UpdateProgress(ctx context.Context, id uuid.UUID, input ProgressInput) (*Career, error) {
	if err := validate.Struct(input, map[string]string{
		"current_round": "Current round must be at least 1",
		"status":        "Invalid status",
	}); err != nil {
		return nil, err
	}

	c, err := s.repo.GetCareer(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status.Terminal() && input.Status != c.Status {
		return nil, ErrTerminalStatus
	}

	updated, err := s.repo.UpdateProgress(ctx, id, input.CurrentRound, input.Status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("career aggiornata", "career_id", id, "current_round", updated.CurrentRound, "status", updated.Status)
	return &updated, nil
}

// initialFinances calcola budget = prestigio * 100M e reputazione = min(prestigio, 100).
func initialFinances(prestige int64) (money.Value, int, error) {
	base, err := money.FromInt64(prestige)
	if err != nil {
		return money.Value{}, 0, apperr.Internal(err)
	}
	budget, err := base.MulInt(budgetPerPrestige)
	if err != nil {
		return money.Value{}, 0, apperr.Internal(err)
	}
	reputation := int(min(prestige, maxReputation))
	return budget, reputation, nil
}
