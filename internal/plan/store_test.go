package plan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type memoryStorage struct {
	data []byte
}

func (m *memoryStorage) Read() ([]byte, error) {
	return m.data, nil
}

func (m *memoryStorage) Write(data []byte) error {
	m.data = data
	return nil
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	storage := &memoryStorage{}
	ids := &SequenceGenerator{Prefix: "test"}

	store := NewStore(storage, ids, zap.NewNop())
	store.AddCompleted("Calculus", 4, 88)
	store.AddPlanned("Physics", 3, 70, 95, 0.7)
	target := 85.0
	store.TargetScore = &target

	if err := store.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewStore(storage, ids, zap.NewNop())
	if err := loaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded.Completed) != 1 || loaded.Completed[0].Name != "Calculus" {
		t.Errorf("completed courses = %+v, want Calculus", loaded.Completed)
	}
	if len(loaded.Planned) != 1 || loaded.Planned[0].Name != "Physics" {
		t.Errorf("planned courses = %+v, want Physics", loaded.Planned)
	}
	if loaded.TargetScore == nil || *loaded.TargetScore != 85 {
		t.Errorf("target score = %v, want 85", loaded.TargetScore)
	}
	if loaded.Completed[0].ID != "test-1" || loaded.Planned[0].ID != "test-2" {
		t.Errorf("ids = %s, %s, want sequence ids", loaded.Completed[0].ID, loaded.Planned[0].ID)
	}
}

func TestStoreLoadEmptyStorage(t *testing.T) {
	store := NewStore(&memoryStorage{}, nil, nil)
	if err := store.Load(); err != nil {
		t.Fatalf("load of empty storage: %v", err)
	}
	if len(store.Completed) != 0 || len(store.Planned) != 0 || store.TargetScore != nil {
		t.Errorf("expected an empty plan, got %+v", store)
	}
}

func TestFileStorageMissingFileReadsEmpty(t *testing.T) {
	storage := FileStorage{Path: filepath.Join(t.TempDir(), "missing.json")}
	data, err := storage.Read()
	if err != nil {
		t.Fatalf("read of missing file: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil data, got %q", data)
	}
}

func TestStoreApplyOptimizedTargets(t *testing.T) {
	store := NewStore(&memoryStorage{}, &SequenceGenerator{}, zap.NewNop())
	store.AddPlanned("Physics", 3, 70, 95, 0.7)
	store.AddPlanned("History", 2.5, 80, 98, 0.3)

	store.ApplyOptimizedTargets([]float64{70, 97.6})

	if store.Planned[0].OptimizedTarget == nil || *store.Planned[0].OptimizedTarget != 70 {
		t.Errorf("first target = %v, want 70", store.Planned[0].OptimizedTarget)
	}
	if store.Planned[1].OptimizedTarget == nil || *store.Planned[1].OptimizedTarget != 97.6 {
		t.Errorf("second target = %v, want 97.6", store.Planned[1].OptimizedTarget)
	}
}

func TestStoreExportWritesVersionTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")

	store := NewStore(&memoryStorage{}, &SequenceGenerator{}, zap.NewNop())
	store.AddCompleted("Calculus", 4, 88)
	store.AddPlanned("Physics", 3, 70, 95, 0.7)

	if err := store.Export(path, nil); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if doc.Version != "2.0" {
		t.Errorf("version = %q, want 2.0", doc.Version)
	}
	if len(doc.Completed) != 1 || len(doc.Planned) != 1 {
		t.Errorf("exported %d completed and %d planned, want 1 and 1", len(doc.Completed), len(doc.Planned))
	}
}

func TestStoreExportSelectedIdsOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.json")

	store := NewStore(&memoryStorage{}, &SequenceGenerator{Prefix: "c"}, zap.NewNop())
	keep := store.AddCompleted("Calculus", 4, 88)
	store.AddCompleted("Chemistry", 3, 75)
	store.AddPlanned("Physics", 3, 70, 95, 0.7)

	if err := store.Export(path, []string{keep.ID}); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(doc.Completed) != 1 || doc.Completed[0].Name != "Calculus" {
		t.Errorf("completed = %+v, want only Calculus", doc.Completed)
	}
	if len(doc.Planned) != 0 {
		t.Errorf("planned = %+v, want empty", doc.Planned)
	}
}

func TestStoreImportReplacesAndAssignsIds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import.json")

	target := 88.0
	doc := Document{
		Version:     "2.0",
		Completed:   []CompletedCourse{{Name: "Imported", Credit: 3, Score: 80}},
		Planned:     []PlannedCourse{{ID: "keep-me", Name: "Planned", Credit: 2, MinScore: 60, MaxScore: 90, Difficulty: 0.4}},
		TargetScore: &target,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := NewStore(&memoryStorage{}, &SequenceGenerator{Prefix: "gen"}, zap.NewNop())
	store.AddCompleted("Old", 1, 50) // consumes gen-1 before the import

	if err := store.Import(path); err != nil {
		t.Fatalf("import: %v", err)
	}

	if len(store.Completed) != 1 || store.Completed[0].Name != "Imported" {
		t.Errorf("completed = %+v, want the imported course only", store.Completed)
	}
	if store.Completed[0].ID != "gen-2" {
		t.Errorf("generated id = %q, want gen-2", store.Completed[0].ID)
	}
	if store.Planned[0].ID != "keep-me" {
		t.Errorf("existing id = %q, want keep-me preserved", store.Planned[0].ID)
	}
	if store.TargetScore == nil || *store.TargetScore != 88 {
		t.Errorf("target = %v, want 88", store.TargetScore)
	}
}

func TestUUIDGeneratorProducesUniqueIds(t *testing.T) {
	gen := UUIDGenerator{}
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
