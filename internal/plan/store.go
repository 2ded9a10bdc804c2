package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"gradeplan/pkg/constants"
)

// Document is the flat persisted representation of a study plan. The version
// tag is written on export; imports accept any version.
type Document struct {
	Version     string            `json:"version,omitempty"`
	Completed   []CompletedCourse `json:"completed"`
	Planned     []PlannedCourse   `json:"planned"`
	TargetScore *float64          `json:"targetScore"`
}

// Storage is the persistence port the Store reads and writes through.
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// FileStorage persists plan data to a file on disk. A missing file reads as
// an empty plan rather than an error.
type FileStorage struct {
	Path string
}

// Read returns the file contents, or nil when the file does not exist yet.
func (s FileStorage) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plan file %s: %w", s.Path, err)
	}
	return data, nil
}

// Write replaces the file contents.
func (s FileStorage) Write(data []byte) error {
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file %s: %w", s.Path, err)
	}
	return nil
}

// Store holds the working copy of a study plan and its persistence lifecycle.
// It owns the course lists between Load and Save; the optimization engine
// never touches the store directly.
type Store struct {
	Completed   []CompletedCourse
	Planned     []PlannedCourse
	TargetScore *float64

	storage Storage
	ids     IDGenerator
	logger  *zap.Logger
}

// NewStore constructs a Store over the provided storage port. A nil id
// generator defaults to UUIDs and a nil logger to a no-op logger.
func NewStore(storage Storage, ids IDGenerator, logger *zap.Logger) *Store {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{storage: storage, ids: ids, logger: logger}
}

// Load reads the persisted plan into the store. An empty storage read leaves
// the store empty without error.
func (s *Store) Load() error {
	data, err := s.storage.Read()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		s.logger.Debug("no persisted plan found, starting empty",
			zap.String("op", "plan.Load"),
		)
		return nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse plan data: %w", err)
	}

	s.Completed = doc.Completed
	s.Planned = doc.Planned
	s.TargetScore = doc.TargetScore

	s.logger.Debug("plan loaded",
		zap.String("op", "plan.Load"),
		zap.Int("completed", len(s.Completed)),
		zap.Int("planned", len(s.Planned)),
	)
	return nil
}

// Save writes the current plan back through the storage port.
func (s *Store) Save() error {
	doc := Document{
		Completed:   s.Completed,
		Planned:     s.Planned,
		TargetScore: s.TargetScore,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan data: %w", err)
	}
	return s.storage.Write(data)
}

// AddCompleted appends a completed course record with a freshly generated id.
func (s *Store) AddCompleted(name string, credit, score float64) CompletedCourse {
	course := CompletedCourse{
		ID:     s.ids.NewID(),
		Name:   name,
		Credit: credit,
		Score:  score,
	}
	s.Completed = append(s.Completed, course)
	return course
}

// AddPlanned appends a planned course record with a freshly generated id.
func (s *Store) AddPlanned(name string, credit, minScore, maxScore, difficulty float64) PlannedCourse {
	course := PlannedCourse{
		ID:         s.ids.NewID(),
		Name:       name,
		Credit:     credit,
		MinScore:   minScore,
		MaxScore:   maxScore,
		Difficulty: difficulty,
	}
	s.Planned = append(s.Planned, course)
	return course
}

// ApplyOptimizedTargets writes per-course targets back onto the planned
// courses. The scores slice is aligned positionally with the planned list;
// extra entries on either side are ignored.
func (s *Store) ApplyOptimizedTargets(scores []float64) {
	for i := range s.Planned {
		if i >= len(scores) {
			break
		}
		score := scores[i]
		s.Planned[i].OptimizedTarget = &score
	}
}

// Export writes the plan as a versioned JSON document to the given path.
// When selected is non-empty, only courses with a matching id are exported.
func (s *Store) Export(path string, selected []string) error {
	doc := Document{
		Version:     constants.PlanDocumentVersion,
		Completed:   s.Completed,
		Planned:     s.Planned,
		TargetScore: s.TargetScore,
	}

	if len(selected) > 0 {
		keep := make(map[string]struct{}, len(selected))
		for _, id := range selected {
			keep[id] = struct{}{}
		}
		doc.Completed = filterCompleted(s.Completed, keep)
		doc.Planned = filterPlanned(s.Planned, keep)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan export %s: %w", path, err)
	}

	s.logger.Info("plan exported",
		zap.String("op", "plan.Export"),
		zap.String("path", path),
		zap.Int("completed", len(doc.Completed)),
		zap.Int("planned", len(doc.Planned)),
	)
	return nil
}

// Import replaces the store contents with the document at the given path.
// Courses missing an id are assigned one on the way in.
func (s *Store) Import(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read plan import %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse plan import %s: %w", path, err)
	}

	for i := range doc.Completed {
		if doc.Completed[i].ID == "" {
			doc.Completed[i].ID = s.ids.NewID()
		}
	}
	for i := range doc.Planned {
		if doc.Planned[i].ID == "" {
			doc.Planned[i].ID = s.ids.NewID()
		}
	}

	s.Completed = doc.Completed
	s.Planned = doc.Planned
	s.TargetScore = doc.TargetScore

	s.logger.Info("plan imported",
		zap.String("op", "plan.Import"),
		zap.String("path", path),
		zap.String("version", doc.Version),
		zap.Int("completed", len(s.Completed)),
		zap.Int("planned", len(s.Planned)),
	)
	return nil
}

func filterCompleted(courses []CompletedCourse, keep map[string]struct{}) []CompletedCourse {
	filtered := make([]CompletedCourse, 0, len(courses))
	for _, course := range courses {
		if _, ok := keep[course.ID]; ok {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

func filterPlanned(courses []PlannedCourse, keep map[string]struct{}) []PlannedCourse {
	filtered := make([]PlannedCourse, 0, len(courses))
	for _, course := range courses {
		if _, ok := keep[course.ID]; ok {
			filtered = append(filtered, course)
		}
	}
	return filtered
}
