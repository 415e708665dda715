package squad

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"UltimateCareer/service/career/internal/apperr"
	"UltimateCareer/service/career/internal/career"
	"UltimateCareer/service/career/internal/validate"
	"github.com/google/uuid"
)

// Service compone tattica e formazione di una career.
// Ogni metodo verifica l'ownership prima di leggere o scrivere.
type Service struct {
	repo   Repository
	owners career.Authorizer
	logger *slog.Logger
}

// NewService crea il servizio squad.
func NewService(repo Repository, owners career.Authorizer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, owners: owners, logger: logger}
}

// GetTactic ritorna la tattica della career, NotFound se non ancora creata.
func (s *Service) GetTactic(ctx context.Context, careerID, requesterID uuid.UUID) (*Tactic, error) {
	if _, err := s.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	t, err := s.repo.GetTacticByCareer(ctx, careerID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTactic crea la tattica partendo dai default; Conflict se esiste gia'.
func (s *Service) CreateTactic(ctx context.Context, careerID, requesterID uuid.UUID, input TacticInput) (*Tactic, error) {
	if _, err := s.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	if err := validateTactic(input); err != nil {
		return nil, err
	}

	t := defaultTactic(careerID)
	input.apply(&t)
	created, err := s.repo.CreateTactic(ctx, t)
	if err != nil {
		return nil, err
	}
	s.logger.Info("tattica creata", "career_id", careerID, "formation", created.Formation)
	return &created, nil
}

// UpsertTactic aggiorna i campi presenti; se la tattica manca la crea
// con i default per quelli assenti.
func (s *Service) UpsertTactic(ctx context.Context, careerID, requesterID uuid.UUID, input TacticInput) (*Tactic, error) {
	if _, err := s.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	if err := validateTactic(input); err != nil {
		return nil, err
	}

	current, err := s.repo.GetTacticByCareer(ctx, careerID)
	switch {
	case errors.Is(err, ErrTacticNotFound):
		t := defaultTactic(careerID)
		input.apply(&t)
		created, err := s.repo.CreateTactic(ctx, t)
		if err == nil {
			return &created, nil
		}
		if !errors.Is(err, ErrTacticExists) {
			return nil, err
		}
		// Creata da una richiesta concorrente: si ricade sull'update.
		current, err = s.repo.GetTacticByCareer(ctx, careerID)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	input.apply(&current)
	updated, err := s.repo.UpdateTactic(ctx, current)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func validateTactic(input TacticInput) error {
	return validate.Struct(input, tacticMessages)
}

// GetLineupWithPlayers ritorna nil, nil se la career non ha ancora una formazione.
func (s *Service) GetLineupWithPlayers(ctx context.Context, careerID, requesterID uuid.UUID) (*LineupWithPlayers, error) {
	if _, err := s.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}

	lineup, err := s.repo.GetLineupByCareer(ctx, careerID)
	if errors.Is(err, ErrLineupNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	players, err := s.repo.ListLineupPlayers(ctx, lineup.ID)
	if err != nil {
		return nil, err
	}
	return &LineupWithPlayers{Lineup: lineup, Players: players}, nil
}

// SetLineup sostituisce per intero la rosa: 11 titolari, fino a 12 riserve,
// nessun giocatore ripetuto. La sostituzione e' atomica.
func (s *Service) SetLineup(ctx context.Context, careerID, requesterID uuid.UUID, input SetLineupInput) (*LineupWithPlayers, error) {
	if _, err := s.owners.FindByID(ctx, careerID, requesterID); err != nil {
		return nil, err
	}
	if err := validate.Struct(input, lineupMessages); err != nil {
		return nil, err
	}
	players, err := toLineupPlayers(input)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.ReplaceLineup(ctx, careerID, input.Name, players)
	if err != nil {
		return nil, err
	}
	s.logger.Info("formazione aggiornata", "career_id", careerID, "starters", saved.Starters(), "total", len(saved.Players))
	return &saved, nil
}

// toLineupPlayers converte l'input in righe; un giocatore ripetuto e' un errore di validazione.
func toLineupPlayers(input SetLineupInput) ([]LineupPlayer, error) {
	players := make([]LineupPlayer, 0, len(input.Starters)+len(input.Reserves))
	seen := make(map[uuid.UUID]struct{}, cap(players))
	var issues []apperr.FieldIssue

	add := func(group string, entries []LineupEntry, starter bool) {
		for i, e := range entries {
			id := uuid.MustParse(e.PlayerID)
			if _, dup := seen[id]; dup {
				issues = append(issues, apperr.FieldIssue{
					Field:   fmt.Sprintf("%s[%d].player_id", group, i),
					Message: "Player appears more than once in the lineup",
				})
				continue
			}
			seen[id] = struct{}{}
			players = append(players, LineupPlayer{PlayerID: id, PositionSlot: e.PositionSlot, IsStarter: starter})
		}
	}
	add("starters", input.Starters, true)
	add("reserves", input.Reserves, false)

	if len(issues) > 0 {
		return nil, apperr.Validation("Validation failed", issues...)
	}
	return players, nil
}
