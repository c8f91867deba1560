package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// FrigorificoRepository defines the storage operations for slaughterhouses.
type FrigorificoRepository interface {
	List(ctx context.Context) ([]models.Frigorifico, error)
	Get(ctx context.Context, id uint) (*models.Frigorifico, error)
	Create(ctx context.Context, f *models.Frigorifico) error
	Update(ctx context.Context, f *models.Frigorifico) error
	Delete(ctx context.Context, id uint) error
}

type frigorificoRepository struct {
	db *gorm.DB
}

// NewFrigorificoRepository creates a slaughterhouse repository backed by gorm.
func NewFrigorificoRepository(db *gorm.DB) FrigorificoRepository {
	return &frigorificoRepository{db: db}
}

func (r *frigorificoRepository) List(ctx context.Context) ([]models.Frigorifico, error) {
	var frigorificos []models.Frigorifico
	if err := r.db.WithContext(ctx).Order("nome").Find(&frigorificos).Error; err != nil {
		return nil, fmt.Errorf("list frigorificos: %w", err)
	}
	return frigorificos, nil
}

func (r *frigorificoRepository) Get(ctx context.Context, id uint) (*models.Frigorifico, error) {
	var frigorifico models.Frigorifico
	if err := r.db.WithContext(ctx).First(&frigorifico, id).Error; err != nil {
		return nil, fmt.Errorf("get frigorifico %d: %w", id, err)
	}
	return &frigorifico, nil
}

func (r *frigorificoRepository) Create(ctx context.Context, f *models.Frigorifico) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create frigorifico: %w", err)
	}
	return nil
}

func (r *frigorificoRepository) Update(ctx context.Context, f *models.Frigorifico) error {
	if err := r.db.WithContext(ctx).Save(f).Error; err != nil {
		return fmt.Errorf("update frigorifico %d: %w", f.ID, err)
	}
	return nil
}

func (r *frigorificoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Frigorifico{}, id).Error; err != nil {
		return fmt.Errorf("delete frigorifico %d: %w", id, err)
	}
	return nil
}
