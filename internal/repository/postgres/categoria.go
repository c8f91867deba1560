package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// CategoriaRepository defines the storage operations for animal categories.
type CategoriaRepository interface {
	List(ctx context.Context) ([]models.CategoriaAnimal, error)
	Get(ctx context.Context, id uint) (*models.CategoriaAnimal, error)
	Create(ctx context.Context, c *models.CategoriaAnimal) error
	Update(ctx context.Context, c *models.CategoriaAnimal) error
	Delete(ctx context.Context, id uint) error
}

type categoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository creates an animal category repository backed by gorm.
func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) List(ctx context.Context) ([]models.CategoriaAnimal, error) {
	var categorias []models.CategoriaAnimal
	if err := r.db.WithContext(ctx).Order("nome").Find(&categorias).Error; err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	return categorias, nil
}

func (r *categoriaRepository) Get(ctx context.Context, id uint) (*models.CategoriaAnimal, error) {
	var categoria models.CategoriaAnimal
	if err := r.db.WithContext(ctx).First(&categoria, id).Error; err != nil {
		return nil, fmt.Errorf("get categoria %d: %w", id, err)
	}
	return &categoria, nil
}

func (r *categoriaRepository) Create(ctx context.Context, c *models.CategoriaAnimal) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create categoria: %w", err)
	}
	return nil
}

func (r *categoriaRepository) Update(ctx context.Context, c *models.CategoriaAnimal) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return fmt.Errorf("update categoria %d: %w", c.ID, err)
	}
	return nil
}

func (r *categoriaRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.CategoriaAnimal{}, id).Error; err != nil {
		return fmt.Errorf("delete categoria %d: %w", id, err)
	}
	return nil
}
