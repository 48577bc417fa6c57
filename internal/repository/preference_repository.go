package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a visitor has no stored preference yet.
var ErrNotFound = errors.New("preference not found")

type PreferenceRepositoryInterface interface {
	FindByVisitor(ctx context.Context, visitorID uuid.UUID) (*model.VisitorPreference, error)
	Save(ctx context.Context, pref *model.VisitorPreference) error
}

type PreferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{db}
}

func (r *PreferenceRepository) FindByVisitor(ctx context.Context, visitorID uuid.UUID) (*model.VisitorPreference, error) {
	var pref model.VisitorPreference
	err := r.db.WithContext(ctx).First(&pref, "visitor_id = ?", visitorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Save upserts on visitor_id so concurrent toggles from two tabs do not
// collide on the primary key.
func (r *PreferenceRepository) Save(ctx context.Context, pref *model.VisitorPreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "visitor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "updated_at"}),
	}).Create(pref).Error
}

// MemoryPreferenceRepository keeps preferences in process memory. It backs
// the front when no database is configured.
type MemoryPreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[uuid.UUID]model.VisitorPreference
}

func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{prefs: make(map[uuid.UUID]model.VisitorPreference)}
}

func (r *MemoryPreferenceRepository) FindByVisitor(_ context.Context, visitorID uuid.UUID) (*model.VisitorPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pref, ok := r.prefs[visitorID]
	if !ok {
		return nil, ErrNotFound
	}
	return &pref, nil
}

func (r *MemoryPreferenceRepository) Save(_ context.Context, pref *model.VisitorPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if existing, ok := r.prefs[pref.VisitorID]; ok {
		pref.CreatedAt = existing.CreatedAt
	} else if pref.CreatedAt.IsZero() {
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
	r.prefs[pref.VisitorID] = *pref
	return nil
}

var (
	_ PreferenceRepositoryInterface = (*PreferenceRepository)(nil)
	_ PreferenceRepositoryInterface = (*MemoryPreferenceRepository)(nil)
)
