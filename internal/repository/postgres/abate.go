package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// AbateFilter narrows slaughter event queries for reports and dashboards.
// Zero values mean "no filter".
type AbateFilter struct {
	DataInicio    string
	DataFim       string
	IDProdutor    uint
	IDFrigorifico uint
	IDCategoria   uint
}

// AbateRepository defines the storage operations for slaughter events.
type AbateRepository interface {
	List(ctx context.Context) ([]models.Abate, error)
	ListByProdutor(ctx context.Context, produtorID uint) ([]models.Abate, error)
	ListByFrigorifico(ctx context.Context, frigorificoID uint) ([]models.Abate, error)
	ListFiltered(ctx context.Context, filter AbateFilter) ([]models.Abate, error)
	Get(ctx context.Context, id uint) (*models.Abate, error)
	Create(ctx context.Context, a *models.Abate) error
	Update(ctx context.Context, a *models.Abate) error
	Delete(ctx context.Context, id uint) error
	BulkInsert(ctx context.Context, abates []models.Abate) error
}

type abateRepository struct {
	db *gorm.DB
}

// NewAbateRepository creates a slaughter event repository backed by gorm.
func NewAbateRepository(db *gorm.DB) AbateRepository {
	return &abateRepository{db: db}
}

func (r *abateRepository) withJoins(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Produtor").
		Preload("Propriedade").
		Preload("Frigorifico").
		Preload("CategoriaAnimal")
}

func (r *abateRepository) List(ctx context.Context) ([]models.Abate, error) {
	var abates []models.Abate
	if err := r.withJoins(ctx).Order("data_abate desc").Find(&abates).Error; err != nil {
		return nil, fmt.Errorf("list abates: %w", err)
	}
	return abates, nil
}

func (r *abateRepository) ListByProdutor(ctx context.Context, produtorID uint) ([]models.Abate, error) {
	var abates []models.Abate
	if err := r.withJoins(ctx).
		Where("id_produtor = ?", produtorID).
		Order("data_abate desc").
		Find(&abates).Error; err != nil {
		return nil, fmt.Errorf("list abates do produtor %d: %w", produtorID, err)
	}
	return abates, nil
}

func (r *abateRepository) ListByFrigorifico(ctx context.Context, frigorificoID uint) ([]models.Abate, error) {
	var abates []models.Abate
	if err := r.withJoins(ctx).
		Where("id_frigorifico = ?", frigorificoID).
		Order("data_abate desc").
		Find(&abates).Error; err != nil {
		return nil, fmt.Errorf("list abates do frigorifico %d: %w", frigorificoID, err)
	}
	return abates, nil
}

func (r *abateRepository) ListFiltered(ctx context.Context, filter AbateFilter) ([]models.Abate, error) {
	query := r.withJoins(ctx)
	if filter.DataInicio != "" {
		query = query.Where("data_abate >= ?", filter.DataInicio)
	}
	if filter.DataFim != "" {
		query = query.Where("data_abate <= ?", filter.DataFim)
	}
	if filter.IDProdutor != 0 {
		query = query.Where("id_produtor = ?", filter.IDProdutor)
	}
	if filter.IDFrigorifico != 0 {
		query = query.Where("id_frigorifico = ?", filter.IDFrigorifico)
	}
	if filter.IDCategoria != 0 {
		query = query.Where("id_categoria_animal = ?", filter.IDCategoria)
	}

	var abates []models.Abate
	if err := query.Order("data_abate").Find(&abates).Error; err != nil {
		return nil, fmt.Errorf("list abates filtrados: %w", err)
	}
	return abates, nil
}

func (r *abateRepository) Get(ctx context.Context, id uint) (*models.Abate, error) {
	var abate models.Abate
	if err := r.withJoins(ctx).First(&abate, id).Error; err != nil {
		return nil, fmt.Errorf("get abate %d: %w", id, err)
	}
	return &abate, nil
}

func (r *abateRepository) Create(ctx context.Context, a *models.Abate) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create abate: %w", err)
	}
	return nil
}

func (r *abateRepository) Update(ctx context.Context, a *models.Abate) error {
	if err := r.db.WithContext(ctx).Save(a).Error; err != nil {
		return fmt.Errorf("update abate %d: %w", a.ID, err)
	}
	return nil
}

func (r *abateRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Abate{}, id).Error; err != nil {
		return fmt.Errorf("delete abate %d: %w", id, err)
	}
	return nil
}

// BulkInsert persists an imported batch inside a single transaction. Either
// every row lands or none does; the import pipeline relies on this being
// all-or-nothing.
func (r *abateRepository) BulkInsert(ctx context.Context, abates []models.Abate) error {
	if len(abates) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range abates {
			if err := tx.Create(&abates[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bulk insert de %d abates: %w", len(abates), err)
	}
	return nil
}
