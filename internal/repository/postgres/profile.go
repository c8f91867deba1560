package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// ProfileRepository defines the storage operations for user profiles.
type ProfileRepository interface {
	List(ctx context.Context) ([]models.Profile, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Create(ctx context.Context, p *models.Profile) error
	Update(ctx context.Context, p *models.Profile) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a profile repository backed by gorm.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Order("name").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

func (r *profileRepository) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}
	return &profile, nil
}

func (r *profileRepository) Create(ctx context.Context, p *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, p *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update profile %s: %w", p.ID, err)
	}
	return nil
}

func (r *profileRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Profile, error) {
	if err := r.db.WithContext(ctx).Model(&models.Profile{}).
		Where("id = ?", id).
		Update("active", active).Error; err != nil {
		return nil, fmt.Errorf("set active do profile %s: %w", id, err)
	}
	return r.Get(ctx, id)
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Profile{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}
