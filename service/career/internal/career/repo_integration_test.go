package career

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Test d'integrazione: crea una career su dati reali e la rilegge dal DB.
func TestRepoCreateAndReadCareer(t *testing.T) {
	dsn := os.Getenv("CAREER_TEST_DSN")
	if dsn == "" {
		t.Skip("CAREER_TEST_DSN not set")
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := NewRepo(db)

	championshipID := uuid.New()
	seasonID := uuid.New()
	divisionID := uuid.New()
	teamID := uuid.New()
	userID := uuid.New()

	if _, err := db.ExecContext(ctx, `INSERT INTO championships (id, name, country) VALUES ($1,'Brasileirao','BR')`, championshipID); err != nil {
		t.Fatalf("insert championship: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO seasons (id, year) VALUES ($1, 1900 + floor(random()*10000)::int)`, seasonID); err != nil {
		t.Fatalf("insert season: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO teams (id, name, short_name, city, stadium, prestige) VALUES ($1,'Santos','SAN','Santos','Vila Belmiro',80)`, teamID); err != nil {
		t.Fatalf("insert team: %v", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO divisions (id, championship_id, season_id, name, level, total_teams, total_rounds) VALUES ($1,$2,$3,'Serie B',2,20,38)`, divisionID, championshipID, seasonID); err != nil {
		t.Fatalf("insert division: %v", err)
	}
	t.Cleanup(func() {
		_, _ = db.ExecContext(ctx, `DELETE FROM careers WHERE user_id = $1`, userID)
		_, _ = db.ExecContext(ctx, `DELETE FROM divisions WHERE id = $1`, divisionID)
		_, _ = db.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
		_, _ = db.ExecContext(ctx, `DELETE FROM seasons WHERE id = $1`, seasonID)
		_, _ = db.ExecContext(ctx, `DELETE FROM championships WHERE id = $1`, championshipID)
	})

	service := NewService(repo, nil)
	created, err := service.Create(ctx, userID, CreateInput{ChampionshipID: championshipID.String(), TeamID: teamID.String()})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Budget.String() != "8000000000" || created.DivisionID != divisionID {
		t.Fatalf("unexpected career: %+v", created)
	}

	careers, err := repo.ListCareersByUser(ctx, userID)
	if err != nil || len(careers) != 1 {
		t.Fatalf("ListCareersByUser: %v (%d)", err, len(careers))
	}

	if err := service.Delete(ctx, created.ID, userID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetCareer(ctx, created.ID); !errors.Is(err, ErrCareerNotFound) {
		t.Fatalf("expected ErrCareerNotFound after delete, got %v", err)
	}
}
