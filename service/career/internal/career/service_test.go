package career

import (
	"context"
	"errors"
	"testing"
	"time"

	"UltimateCareer/pkg/money"
	"UltimateCareer/service/career/internal/apperr"
	"github.com/google/uuid"
)

// fakeRepo simula il repository per testare la logica di dominio.
type fakeRepo struct {
	careers     map[uuid.UUID]Career
	team        Team
	teamErr     error
	division    Division
	divisionErr error
	season      Season
	seasonErr   error
	createErr   error
	created     []Career
	deleted     []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{careers: map[uuid.UUID]Career{}}
}

func (f *fakeRepo) ListCareersByUser(_ context.Context, userID uuid.UUID) ([]Career, error) {
	var out []Career
	for _, c := range f.careers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetCareer(_ context.Context, id uuid.UUID) (Career, error) {
	c, ok := f.careers[id]
	if !ok {
		return Career{}, ErrCareerNotFound
	}
	return c, nil
}

func (f *fakeRepo) GetTeam(_ context.Context, _ uuid.UUID) (Team, error) {
	if f.teamErr != nil {
		return Team{}, f.teamErr
	}
	return f.team, nil
}

func (f *fakeRepo) LowestDivision(_ context.Context, _ uuid.UUID) (Division, error) {
	if f.divisionErr != nil {
		return Division{}, f.divisionErr
	}
	return f.division, nil
}

func (f *fakeRepo) GetSeason(_ context.Context, _ uuid.UUID) (Season, error) {
	if f.seasonErr != nil {
		return Season{}, f.seasonErr
	}
	return f.season, nil
}

func (f *fakeRepo) CreateCareer(_ context.Context, c Career) (Career, error) {
	if f.createErr != nil {
		return Career{}, f.createErr
	}
	c.CreatedAt = time.Now()
	f.careers[c.ID] = c
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeRepo) DeleteCareer(_ context.Context, id uuid.UUID) error {
	delete(f.careers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) UpdateProgress(_ context.Context, id uuid.UUID, round int, status Status) (Career, error) {
	c := f.careers[id]
	c.CurrentRound = round
	c.Status = status
	f.careers[id] = c
	return c, nil
}

func repoWithLeague(prestige int64) *fakeRepo {
	repo := newFakeRepo()
	seasonID := uuid.New()
	repo.team = Team{ID: uuid.New(), Name: "Palmeiras", Prestige: prestige}
	repo.division = Division{ID: uuid.New(), ChampionshipID: uuid.New(), SeasonID: seasonID, Level: 1}
	repo.season = Season{ID: seasonID, Year: 2026}
	return repo
}

func createInput(repo *fakeRepo) CreateInput {
	return CreateInput{ChampionshipID: repo.division.ChampionshipID.String(), TeamID: repo.team.ID.String()}
}

// Prestigio 80: budget 8 miliardi e reputazione 80.
func TestCreateBudgetFromPrestige(t *testing.T) {
	repo := repoWithLeague(80)
	service := NewService(repo, nil)
	userID := uuid.New()

	c, err := service.Create(context.Background(), userID, createInput(repo))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Budget.String() != "8000000000" {
		t.Fatalf("expected budget 8000000000, got %s", c.Budget)
	}
	if c.Reputation != 80 {
		t.Fatalf("expected reputation 80, got %d", c.Reputation)
	}
	if c.CurrentRound != 1 || c.Status != StatusActive {
		t.Fatalf("unexpected initial state: round=%d status=%s", c.CurrentRound, c.Status)
	}
	if c.UserID != userID || c.SeasonID != repo.season.ID || c.DivisionID != repo.division.ID {
		t.Fatalf("unexpected references: %+v", c)
	}
}

// Prestigio 150: reputazione limitata a 100, budget no.
func TestCreateReputationCapped(t *testing.T) {
	repo := repoWithLeague(150)
	service := NewService(repo, nil)

	c, err := service.Create(context.Background(), uuid.New(), createInput(repo))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Reputation != 100 {
		t.Fatalf("expected reputation 100, got %d", c.Reputation)
	}
	if c.Budget.String() != "15000000000" {
		t.Fatalf("expected budget 15000000000, got %s", c.Budget)
	}
}

// Gli errori di lookup arrivano con il loro messaggio specifico.
func TestCreateLookupFailures(t *testing.T) {
	cases := map[string]struct {
		setup func(*fakeRepo)
		want  error
	}{
		"team":     {setup: func(r *fakeRepo) { r.teamErr = ErrTeamNotFound }, want: ErrTeamNotFound},
		"division": {setup: func(r *fakeRepo) { r.divisionErr = ErrDivisionNotFound }, want: ErrDivisionNotFound},
		"season":   {setup: func(r *fakeRepo) { r.seasonErr = ErrSeasonNotFound }, want: ErrSeasonNotFound},
	}
	for name, tc := range cases {
		repo := repoWithLeague(50)
		tc.setup(repo)
		service := NewService(repo, nil)

		_, err := service.Create(context.Background(), uuid.New(), createInput(repo))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
		}
		if len(repo.created) != 0 {
			t.Fatalf("%s: career must not be created", name)
		}
	}
}

// Input non valido: errore di validazione con entrambi i campi.
func TestCreateValidation(t *testing.T) {
	service := NewService(newFakeRepo(), nil)

	_, err := service.Create(context.Background(), uuid.New(), CreateInput{ChampionshipID: "x"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(appErr.Fields) != 2 {
		t.Fatalf("expected 2 field issues, got %+v", appErr.Fields)
	}
}

// Ownership: il proprietario legge, un altro utente riceve Forbidden.
func TestFindByIDOwnership(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	c := Career{ID: uuid.New(), UserID: owner, Budget: money.MustInt64(1)}
	repo.careers[c.ID] = c
	service := NewService(repo, nil)

	got, err := service.FindByID(context.Background(), c.ID, owner)
	if err != nil || got.ID != c.ID {
		t.Fatalf("owner should read career: %v", err)
	}
	if _, err := service.FindByID(context.Background(), c.ID, uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := service.FindByID(context.Background(), uuid.New(), owner); !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

// Delete di una career altrui non cancella nulla.
func TestDeleteOwnership(t *testing.T) {
	repo := newFakeRepo()
	owner := uuid.New()
	c := Career{ID: uuid.New(), UserID: owner}
	repo.careers[c.ID] = c
	service := NewService(repo, nil)

	if err := service.Delete(context.Background(), c.ID, uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.deleted) != 0 {
		t.Fatalf("did not expect delete")
	}
	if err := service.Delete(context.Background(), c.ID, owner); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != c.ID {
		t.Fatalf("expected career to be deleted")
	}
}

// Da uno stato terminale non si torna ad active.
func TestUpdateProgressTerminal(t *testing.T) {
	repo := newFakeRepo()
	c := Career{ID: uuid.New(), UserID: uuid.New(), CurrentRound: 5, Status: StatusActive}
	repo.careers[c.ID] = c
	service := NewService(repo, nil)

	updated, err := service.UpdateProgress(context.Background(), c.ID, ProgressInput{CurrentRound: 38, Status: StatusChampion})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusChampion || updated.CurrentRound != 38 {
		t.Fatalf("unexpected career: %+v", updated)
	}

	_, err = service.UpdateProgress(context.Background(), c.ID, ProgressInput{CurrentRound: 1, Status: StatusActive})
	if !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
}

func TestUpdateProgressValidation(t *testing.T) {
	repo := newFakeRepo()
	c := Career{ID: uuid.New(), Status: StatusActive}
	repo.careers[c.ID] = c
	service := NewService(repo, nil)

	_, err := service.UpdateProgress(context.Background(), c.ID, ProgressInput{CurrentRound: 0, Status: "retired"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || len(appErr.Fields) != 2 {
		t.Fatalf("expected 2 validation issues, got %v", err)
	}
}
