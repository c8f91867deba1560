package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// ProdutorRepository defines the storage operations for producers.
type ProdutorRepository interface {
	List(ctx context.Context) ([]models.Produtor, error)
	Get(ctx context.Context, id uint) (*models.Produtor, error)
	Create(ctx context.Context, p *models.Produtor) error
	Update(ctx context.Context, p *models.Produtor) error
	Delete(ctx context.Context, id uint) error
}

type produtorRepository struct {
	db *gorm.DB
}

// NewProdutorRepository creates a producer repository backed by gorm.
func NewProdutorRepository(db *gorm.DB) ProdutorRepository {
	return &produtorRepository{db: db}
}

func (r *produtorRepository) List(ctx context.Context) ([]models.Produtor, error) {
	var produtores []models.Produtor
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&produtores).Error; err != nil {
		return nil, fmt.Errorf("list produtores: %w", err)
	}
	return produtores, nil
}

func (r *produtorRepository) Get(ctx context.Context, id uint) (*models.Produtor, error) {
	var produtor models.Produtor
	if err := r.db.WithContext(ctx).Preload("Propriedades").First(&produtor, id).Error; err != nil {
		return nil, fmt.Errorf("get produtor %d: %w", id, err)
	}
	return &produtor, nil
}

func (r *produtorRepository) Create(ctx context.Context, p *models.Produtor) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create produtor: %w", err)
	}
	return nil
}

func (r *produtorRepository) Update(ctx context.Context, p *models.Produtor) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update produtor %d: %w", p.ID, err)
	}
	return nil
}

func (r *produtorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Produtor{}, id).Error; err != nil {
		return fmt.Errorf("delete produtor %d: %w", id, err)
	}
	return nil
}
