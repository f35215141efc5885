package material

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/codezest/catalog/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the materials table.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Material{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedMaterial(t *testing.T, repo domain.MaterialRepository, moduleID, title string, typ domain.MaterialType, order int) *domain.Material {
	t.Helper()
	m := domain.NewMaterial(moduleID, title, typ, "content of "+title, order, nil)
	if err := repo.Create(context.Background(), m); err != nil {
		t.Fatalf("seed %s: %v", title, err)
	}
	return m
}

func TestCreateAndFindByID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	duration := 15
	m := domain.NewMaterial("mod-1", "Intro", domain.MaterialVideo, "watch this", 0, &duration)
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected UUID assigned on Create")
	}

	got, err := repo.FindByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Title != "Intro" || got.Type != domain.MaterialVideo {
		t.Errorf("got %+v", got)
	}
	if got.Duration == nil || *got.Duration != 15 {
		t.Errorf("Duration = %v; want 15", got.Duration)
	}
}

func TestFindByModuleIDOrdered(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	seedMaterial(t, repo, "mod-1", "third", domain.MaterialArticle, 2)
	seedMaterial(t, repo, "mod-1", "first", domain.MaterialVideo, 0)
	seedMaterial(t, repo, "mod-1", "second", domain.MaterialArticle, 1)
	seedMaterial(t, repo, "mod-2", "other", domain.MaterialVideo, 0)

	got, err := repo.FindByModuleIDOrdered(ctx, "mod-1")
	if err != nil {
		t.Fatalf("FindByModuleIDOrdered: %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("count = %d; want %d", len(got), len(want))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("position %d = %q; want %q", i, got[i].Title, title)
		}
	}
}

func TestFindByType(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	seedMaterial(t, repo, "mod-1", "v1", domain.MaterialVideo, 0)
	seedMaterial(t, repo, "mod-1", "a1", domain.MaterialArticle, 1)
	seedMaterial(t, repo, "mod-2", "v2", domain.MaterialVideo, 0)

	t.Run("scoped to module", func(t *testing.T) {
		got, err := repo.FindByType(ctx, "mod-1", domain.MaterialVideo)
		if err != nil {
			t.Fatalf("FindByType: %v", err)
		}
		if len(got) != 1 || got[0].Title != "v1" {
			t.Errorf("got %+v; want only v1", got)
		}
	})

	t.Run("across modules", func(t *testing.T) {
		got, err := repo.FindByType(ctx, "", domain.MaterialVideo)
		if err != nil {
			t.Fatalf("FindByType: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("count = %d; want 2 videos", len(got))
		}
	})
}

func TestFindPage(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Now()
	for i, title := range []string{"old", "mid", "new"} {
		m := domain.NewMaterial("mod-1", title, domain.MaterialArticle, "c", i, nil)
		m.CreatedAt = base.Add(time.Duration(i) * time.Second)
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("Create %s: %v", title, err)
		}
	}

	got, err := repo.FindPage(ctx, 0, 2)
	if err != nil {
		t.Fatalf("FindPage: %v", err)
	}
	if len(got) != 2 || got[0].Title != "new" || got[1].Title != "mid" {
		t.Errorf("got %+v; want newest first", got)
	}
}

func TestReorderMaterials(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	a := seedMaterial(t, repo, "mod-1", "a", domain.MaterialVideo, 0)
	b := seedMaterial(t, repo, "mod-1", "b", domain.MaterialArticle, 1)

	err := repo.ReorderMaterials(ctx, []domain.OrderUpdate{
		{ID: a.ID, Order: 1},
		{ID: b.ID, Order: 0},
	})
	if err != nil {
		t.Fatalf("ReorderMaterials: %v", err)
	}

	got, _ := repo.FindByModuleIDOrdered(ctx, "mod-1")
	if got[0].Title != "b" || got[1].Title != "a" {
		t.Errorf("order = %q/%q; want b/a", got[0].Title, got[1].Title)
	}
}

func TestReorderMaterials_AtomicOnMissingID(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	a := seedMaterial(t, repo, "mod-1", "a", domain.MaterialVideo, 0)

	err := repo.ReorderMaterials(ctx, []domain.OrderUpdate{
		{ID: a.ID, Order: 7},
		{ID: "no-such-id", Order: 0},
	})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v; want NotFound", err)
	}

	got, _ := repo.FindByID(ctx, a.ID)
	if got.SortOrder != 0 {
		t.Errorf("SortOrder = %d; want rollback to 0", got.SortOrder)
	}
}

func TestDeleteMaterial(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	m := seedMaterial(t, repo, "mod-1", "a", domain.MaterialVideo, 0)

	if err := repo.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, m.ID); !domain.IsNotFound(err) {
		t.Errorf("expected NotFound for repeat delete, got %v", err)
	}
}

func TestCountAndExists(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	m := seedMaterial(t, repo, "mod-1", "a", domain.MaterialVideo, 0)

	total, err := repo.Count(ctx)
	if err != nil || total != 1 {
		t.Errorf("Count = %d, %v; want 1", total, err)
	}

	ok, err := repo.Exists(ctx, m.ID)
	if err != nil || !ok {
		t.Errorf("Exists = %v, %v; want true", ok, err)
	}
	ok, err = repo.Exists(ctx, "missing")
	if err != nil || ok {
		t.Errorf("Exists = %v, %v; want false", ok, err)
	}
}
