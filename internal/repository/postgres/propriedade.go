package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// PropriedadeRepository defines the storage operations for properties.
type PropriedadeRepository interface {
	List(ctx context.Context) ([]models.Propriedade, error)
	ListByProdutor(ctx context.Context, produtorID uint) ([]models.Propriedade, error)
	Get(ctx context.Context, id uint) (*models.Propriedade, error)
	Create(ctx context.Context, p *models.Propriedade) error
	Update(ctx context.Context, p *models.Propriedade) error
	Delete(ctx context.Context, id uint) error
}

type propriedadeRepository struct {
	db *gorm.DB
}

// NewPropriedadeRepository creates a property repository backed by gorm.
func NewPropriedadeRepository(db *gorm.DB) PropriedadeRepository {
	return &propriedadeRepository{db: db}
}

func (r *propriedadeRepository) List(ctx context.Context) ([]models.Propriedade, error) {
	var propriedades []models.Propriedade
	if err := r.db.WithContext(ctx).Preload("Produtor").Order("nome").Find(&propriedades).Error; err != nil {
		return nil, fmt.Errorf("list propriedades: %w", err)
	}
	return propriedades, nil
}

func (r *propriedadeRepository) ListByProdutor(ctx context.Context, produtorID uint) ([]models.Propriedade, error) {
	var propriedades []models.Propriedade
	if err := r.db.WithContext(ctx).
		Where("id_produtor = ?", produtorID).
		Order("nome").
		Find(&propriedades).Error; err != nil {
		return nil, fmt.Errorf("list propriedades do produtor %d: %w", produtorID, err)
	}
	return propriedades, nil
}

func (r *propriedadeRepository) Get(ctx context.Context, id uint) (*models.Propriedade, error) {
	var propriedade models.Propriedade
	if err := r.db.WithContext(ctx).Preload("Produtor").First(&propriedade, id).Error; err != nil {
		return nil, fmt.Errorf("get propriedade %d: %w", id, err)
	}
	return &propriedade, nil
}

func (r *propriedadeRepository) Create(ctx context.Context, p *models.Propriedade) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create propriedade: %w", err)
	}
	return nil
}

func (r *propriedadeRepository) Update(ctx context.Context, p *models.Propriedade) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update propriedade %d: %w", p.ID, err)
	}
	return nil
}

func (r *propriedadeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Propriedade{}, id).Error; err != nil {
		return fmt.Errorf("delete propriedade %d: %w", id, err)
	}
	return nil
}
