package career

import (
	"context"

	"github.com/google/uuid"
)

// Guard verifica che il richiedente sia il proprietario della career.
// Va chiamato prima di qualsiasi operazione con scope career.
type Guard struct {
	repo CareerRepository
}

func NewGuard(repo CareerRepository) *Guard {
	return &Guard{repo: repo}
}

// Authorize carica la career e controlla l'ownership.
// NotFound se la career non esiste, Forbidden se appartiene a un altro utente.
func (g *Guard) Authorize(ctx context.Context, careerID, requesterID uuid.UUID) (*Career, error) {
	c, err := g.repo.GetCareer(ctx, careerID)
	if err != nil {
		return nil, err
	}
	if err := CheckOwner(c, requesterID); err != nil {
		return nil, err
	}
	return &c, nil
}

// CheckOwner e' il controllo puro sull'user_id.
func CheckOwner(c Career, requesterID uuid.UUID) error {
	if requesterID == uuid.Nil || c.UserID != requesterID {
		return ErrForbidden
	}
	return nil
}
