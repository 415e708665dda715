package squad

import (
	"context"
	"errors"
	"testing"

	"UltimateCareer/service/career/internal/apperr"
	"UltimateCareer/service/career/internal/career"
	"github.com/google/uuid"
)

// fakeOwners simula il controllo di ownership delle career.
type fakeOwners struct {
	owners map[uuid.UUID]uuid.UUID
}

func (f *fakeOwners) FindByID(_ context.Context, id, requesterID uuid.UUID) (*career.Career, error) {
	owner, ok := f.owners[id]
	if !ok {
		return nil, career.ErrCareerNotFound
	}
	c := career.Career{ID: id, UserID: owner}
	if err := career.CheckOwner(c, requesterID); err != nil {
		return nil, err
	}
	return &c, nil
}

// fakeRepo tiene tattiche e formazioni in memoria.
type fakeRepo struct {
	tactics    map[uuid.UUID]Tactic
	lineups    map[uuid.UUID]LineupWithPlayers
	createErr  error
	replaceErr error
	replaced   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tactics: map[uuid.UUID]Tactic{}, lineups: map[uuid.UUID]LineupWithPlayers{}}
}

func (f *fakeRepo) GetTacticByCareer(_ context.Context, careerID uuid.UUID) (Tactic, error) {
	t, ok := f.tactics[careerID]
	if !ok {
		return Tactic{}, ErrTacticNotFound
	}
	return t, nil
}

func (f *fakeRepo) CreateTactic(_ context.Context, t Tactic) (Tactic, error) {
	if f.createErr != nil {
		return Tactic{}, f.createErr
	}
	if _, ok := f.tactics[t.CareerID]; ok {
		return Tactic{}, ErrTacticExists
	}
	f.tactics[t.CareerID] = t
	return t, nil
}

func (f *fakeRepo) UpdateTactic(_ context.Context, t Tactic) (Tactic, error) {
	if _, ok := f.tactics[t.CareerID]; !ok {
		return Tactic{}, ErrTacticNotFound
	}
	f.tactics[t.CareerID] = t
	return t, nil
}

func (f *fakeRepo) GetLineupByCareer(_ context.Context, careerID uuid.UUID) (Lineup, error) {
	l, ok := f.lineups[careerID]
	if !ok {
		return Lineup{}, ErrLineupNotFound
	}
	return l.Lineup, nil
}

func (f *fakeRepo) ListLineupPlayers(_ context.Context, lineupID uuid.UUID) ([]LineupPlayer, error) {
	for _, l := range f.lineups {
		if l.Lineup.ID == lineupID {
			return l.Players, nil
		}
	}
	return []LineupPlayer{}, nil
}

func (f *fakeRepo) ReplaceLineup(_ context.Context, careerID uuid.UUID, name *string, players []LineupPlayer) (LineupWithPlayers, error) {
	f.replaced++
	if f.replaceErr != nil {
		return LineupWithPlayers{}, f.replaceErr
	}
	current, ok := f.lineups[careerID]
	if !ok {
		current.Lineup = Lineup{ID: uuid.New(), CareerID: careerID}
	}
	if name != nil {
		current.Lineup.Name = name
	}
	current.Players = players
	f.lineups[careerID] = current
	return current, nil
}

type fixture struct {
	svc      *Service
	repo     *fakeRepo
	careerID uuid.UUID
	ownerID  uuid.UUID
}

func newFixture() fixture {
	careerID, ownerID := uuid.New(), uuid.New()
	repo := newFakeRepo()
	owners := &fakeOwners{owners: map[uuid.UUID]uuid.UUID{careerID: ownerID}}
	return fixture{svc: NewService(repo, owners, nil), repo: repo, careerID: careerID, ownerID: ownerID}
}

func strPtr(s string) *string { return &s }

func entries(n int) []LineupEntry {
	out := make([]LineupEntry, n)
	for i := range out {
		out[i] = LineupEntry{PlayerID: uuid.NewString(), PositionSlot: "S" + string(rune('A'+i))}
	}
	return out
}

// Senza input la tattica nasce con i default.
func TestCreateTacticDefaults(t *testing.T) {
	f := newFixture()

	tactic, err := f.svc.CreateTactic(context.Background(), f.careerID, f.ownerID, TacticInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tactic.Formation != "4-4-2" || tactic.Style != "moderate" || tactic.Marking != "zone" ||
		tactic.Tempo != "normal" || tactic.Passing != "mixed" || tactic.Pressure != "normal" {
		t.Fatalf("unexpected defaults: %+v", tactic)
	}
}

func TestCreateTacticConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.svc.CreateTactic(ctx, f.careerID, f.ownerID, TacticInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := f.svc.CreateTactic(ctx, f.careerID, f.ownerID, TacticInput{})
	if apperr.KindOf(err) != apperr.KindConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestGetTacticNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetTactic(context.Background(), f.careerID, f.ownerID)
	if !errors.Is(err, ErrTacticNotFound) {
		t.Fatalf("expected ErrTacticNotFound, got %v", err)
	}
}

// L'upsert crea se manca e poi aggiorna solo i campi presenti.
func TestUpsertTacticPartialUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	created, err := f.svc.UpsertTactic(ctx, f.careerID, f.ownerID, TacticInput{Formation: strPtr("4-3-3")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Formation != "4-3-3" || created.Style != DefaultStyle {
		t.Fatalf("unexpected created tactic: %+v", created)
	}

	updated, err := f.svc.UpsertTactic(ctx, f.careerID, f.ownerID, TacticInput{Pressure: strPtr("high")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != created.ID || updated.Formation != "4-3-3" || updated.Pressure != "high" {
		t.Fatalf("unexpected updated tactic: %+v", updated)
	}
}

func TestUpsertTacticInvalidEnum(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpsertTactic(context.Background(), f.careerID, f.ownerID, TacticInput{Formation: strPtr("2-2-6"), Tempo: strPtr("turbo")})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(appErr.Fields) != 2 || appErr.Fields[0].Message != "Invalid formation" {
		t.Fatalf("unexpected fields: %+v", appErr.Fields)
	}
	if len(f.repo.tactics) != 0 {
		t.Fatalf("nothing should be written")
	}
}

// Tutti i valori ammessi superano la validazione.
func TestTacticEnumsAccepted(t *testing.T) {
	for _, formation := range Formations {
		if err := validateTactic(TacticInput{Formation: strPtr(formation)}); err != nil {
			t.Fatalf("formation %s rejected: %v", formation, err)
		}
	}
	for _, style := range Styles {
		if err := validateTactic(TacticInput{Style: strPtr(style)}); err != nil {
			t.Fatalf("style %s rejected: %v", style, err)
		}
	}
	for _, marking := range Markings {
		if err := validateTactic(TacticInput{Marking: strPtr(marking)}); err != nil {
			t.Fatalf("marking %s rejected: %v", marking, err)
		}
	}
	for _, tempo := range Tempos {
		if err := validateTactic(TacticInput{Tempo: strPtr(tempo)}); err != nil {
			t.Fatalf("tempo %s rejected: %v", tempo, err)
		}
	}
	for _, passing := range Passings {
		if err := validateTactic(TacticInput{Passing: strPtr(passing)}); err != nil {
			t.Fatalf("passing %s rejected: %v", passing, err)
		}
	}
	for _, pressure := range Pressures {
		if err := validateTactic(TacticInput{Pressure: strPtr(pressure)}); err != nil {
			t.Fatalf("pressure %s rejected: %v", pressure, err)
		}
	}
}

func TestTacticForbiddenForOtherUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetTactic(context.Background(), f.careerID, uuid.New())
	if !errors.Is(err, career.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

// Nessuna formazione salvata: risultato vuoto, non errore.
func TestGetLineupEmpty(t *testing.T) {
	f := newFixture()

	lineup, err := f.svc.GetLineupWithPlayers(context.Background(), f.careerID, f.ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lineup != nil {
		t.Fatalf("expected nil lineup, got %+v", lineup)
	}
}

func TestSetLineupReplacesPlayers(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.svc.SetLineup(ctx, f.careerID, f.ownerID, SetLineupInput{Name: strPtr("Titolari"), Starters: entries(11), Reserves: entries(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Starters() != 11 || len(first.Players) != 16 {
		t.Fatalf("unexpected first lineup: %d starters, %d total", first.Starters(), len(first.Players))
	}

	// Nome assente: resta quello precedente, la rosa cambia per intero.
	second, err := f.svc.SetLineup(ctx, f.careerID, f.ownerID, SetLineupInput{Starters: entries(11)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Players) != 11 || second.Lineup.ID != first.Lineup.ID {
		t.Fatalf("unexpected second lineup: %+v", second)
	}
	if second.Lineup.Name == nil || *second.Lineup.Name != "Titolari" {
		t.Fatalf("name should be preserved, got %v", second.Lineup.Name)
	}

	got, err := f.svc.GetLineupWithPlayers(ctx, f.careerID, f.ownerID)
	if err != nil || got == nil || len(got.Players) != 11 {
		t.Fatalf("unexpected stored lineup: %+v, %v", got, err)
	}
}

func TestSetLineupWrongStarterCount(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetLineup(context.Background(), f.careerID, f.ownerID, SetLineupInput{Starters: entries(10)})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Fields[0].Field != "starters" || appErr.Fields[0].Message != "Must have exactly 11 starters" {
		t.Fatalf("unexpected field issue: %+v", appErr.Fields[0])
	}
	if f.repo.replaced != 0 {
		t.Fatalf("repository must not be touched")
	}
}

func TestSetLineupTooManyReserves(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetLineup(context.Background(), f.careerID, f.ownerID, SetLineupInput{Starters: entries(11), Reserves: entries(13)})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetLineupInvalidEntry(t *testing.T) {
	f := newFixture()
	starters := entries(11)
	starters[3].PlayerID = "not-a-uuid"
	starters[5].PositionSlot = "ABCDEFGHIJK"

	_, err := f.svc.SetLineup(context.Background(), f.careerID, f.ownerID, SetLineupInput{Starters: starters})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || len(appErr.Fields) != 2 {
		t.Fatalf("expected two field issues, got %v", err)
	}
	if appErr.Fields[0].Field != "starters[3].player_id" || appErr.Fields[1].Field != "starters[5].position_slot" {
		t.Fatalf("unexpected fields: %+v", appErr.Fields)
	}
}

func TestSetLineupDuplicatePlayer(t *testing.T) {
	f := newFixture()
	starters := entries(11)
	reserves := entries(1)
	reserves[0].PlayerID = starters[0].PlayerID

	_, err := f.svc.SetLineup(context.Background(), f.careerID, f.ownerID, SetLineupInput{Starters: starters, Reserves: reserves})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if appErr.Fields[0].Field != "reserves[0].player_id" {
		t.Fatalf("unexpected field: %+v", appErr.Fields[0])
	}
}

// Career altrui: nessuna scrittura.
func TestSetLineupForbidden(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetLineup(context.Background(), f.careerID, uuid.New(), SetLineupInput{Starters: entries(11)})
	if !errors.Is(err, career.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if f.repo.replaced != 0 {
		t.Fatalf("repository must not be touched")
	}
}

// Chi non possiede la career riceve Forbidden prima di ogni controllo sul corpo.
func TestOwnershipCheckedBeforeInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	stranger := uuid.New()
	bad := TacticInput{Formation: strPtr("2-2-6")}

	if _, err := f.svc.CreateTactic(ctx, f.careerID, stranger, bad); !errors.Is(err, career.ErrForbidden) {
		t.Fatalf("create tactic: expected forbidden, got %v", err)
	}
	if _, err := f.svc.UpsertTactic(ctx, f.careerID, stranger, bad); !errors.Is(err, career.ErrForbidden) {
		t.Fatalf("upsert tactic: expected forbidden, got %v", err)
	}
	if _, err := f.svc.SetLineup(ctx, f.careerID, stranger, SetLineupInput{Starters: entries(3)}); !errors.Is(err, career.ErrForbidden) {
		t.Fatalf("set lineup: expected forbidden, got %v", err)
	}
}

func TestSetLineupUnknownCareer(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetLineup(context.Background(), uuid.New(), f.ownerID, SetLineupInput{Starters: entries(11)})
	if !errors.Is(err, career.ErrCareerNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetLineupRepoError(t *testing.T) {
	f := newFixture()
	f.repo.replaceErr = ErrPlayerNotFound

	_, err := f.svc.SetLineup(context.Background(), f.careerID, f.ownerID, SetLineupInput{Starters: entries(11)})
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}
