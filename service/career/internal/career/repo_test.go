package career

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"UltimateCareer/pkg/money"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

func newMockRepo(t *testing.T) (*Repo, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = raw.Close() })
	return NewRepo(sqlx.NewDb(raw, "postgres")), mock
}

var careerCols = []string{"id", "user_id", "team_id", "season_id", "division_id", "current_round", "budget", "reputation", "status", "created_at"}

// La career viene letta con il budget come bigint esatto.
func TestRepoGetCareer(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	userID := uuid.New()

	rows := sqlmock.NewRows(careerCols).AddRow(
		id.String(), userID.String(), uuid.NewString(), uuid.NewString(), uuid.NewString(),
		3, int64(15000000000), 100, "active", time.Now(),
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM careers")).WithArgs(id).WillReturnRows(rows)

	c, err := repo.GetCareer(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != id || c.UserID != userID {
		t.Fatalf("unexpected ids: %+v", c)
	}
	if c.Budget.String() != "15000000000" || c.Status != StatusActive || c.CurrentRound != 3 {
		t.Fatalf("unexpected career: %+v", c)
	}
}

func TestRepoGetCareerNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM careers").WillReturnRows(sqlmock.NewRows(careerCols))

	_, err := repo.GetCareer(context.Background(), uuid.New())
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

// La divisione si cerca ordinando per livello crescente.
func TestRepoLowestDivision(t *testing.T) {
	repo, mock := newMockRepo(t)
	champ := uuid.New()
	mock.ExpectQuery(`ORDER BY level ASC\s+LIMIT 1`).WithArgs(champ).WillReturnRows(
		sqlmock.NewRows([]string{"id", "championship_id", "season_id", "name", "level"}).
			AddRow(uuid.NewString(), champ.String(), uuid.NewString(), "Serie A", 1),
	)

	d, err := repo.LowestDivision(context.Background(), champ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Level != 1 || d.ChampionshipID != champ {
		t.Fatalf("unexpected division: %+v", d)
	}
}

func TestRepoLowestDivisionNone(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("FROM divisions").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.LowestDivision(context.Background(), uuid.New())
	if !errors.Is(err, ErrDivisionNotFound) {
		t.Fatalf("expected ErrDivisionNotFound, got %v", err)
	}
}

// Il budget viene passato al DB come stringa decimale.
func TestRepoCreateCareerBudgetArg(t *testing.T) {
	repo, mock := newMockRepo(t)
	c := Career{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		TeamID:       uuid.New(),
		SeasonID:     uuid.New(),
		DivisionID:   uuid.New(),
		CurrentRound: 1,
		Budget:       money.MustInt64(8000000000),
		Reputation:   80,
		Status:       StatusActive,
	}
	mock.ExpectQuery("INSERT INTO careers").
		WithArgs(c.ID, c.UserID, c.TeamID, c.SeasonID, c.DivisionID, 1, "8000000000", 80, "active").
		WillReturnRows(sqlmock.NewRows(careerCols).AddRow(
			c.ID.String(), c.UserID.String(), c.TeamID.String(), c.SeasonID.String(), c.DivisionID.String(),
			1, int64(8000000000), 80, "active", time.Now(),
		))

	created, err := repo.CreateCareer(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Budget.String() != "8000000000" {
		t.Fatalf("unexpected budget %s", created.Budget)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

// Lo stato terminale e' protetto dalla WHERE dell'update, non solo dalla lettura.
func TestRepoUpdateProgressGuardsTerminalStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND (status = 'active' OR status = $3)")).
		WillReturnRows(sqlmock.NewRows(careerCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := repo.UpdateProgress(context.Background(), id, 1, StatusActive)
	if !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRepoUpdateProgressNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE careers").WillReturnRows(sqlmock.NewRows(careerCols))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.UpdateProgress(context.Background(), uuid.New(), 2, StatusActive)
	if !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestRepoUpdateProgressOK(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	rows := sqlmock.NewRows(careerCols).AddRow(
		id.String(), uuid.NewString(), uuid.NewString(), uuid.NewString(), uuid.NewString(),
		38, int64(1000), 50, "champion", time.Now(),
	)
	mock.ExpectQuery("UPDATE careers").WillReturnRows(rows)

	c, err := repo.UpdateProgress(context.Background(), id, 38, StatusChampion)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != StatusChampion || c.CurrentRound != 38 {
		t.Fatalf("unexpected career: %+v", c)
	}
}
