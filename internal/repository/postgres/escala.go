package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/pecbr/acaboi/internal/domain/models"
)

// EscalaFilter narrows schedule entry queries. Date bounds are inclusive
// YYYY-MM-DD strings; IDTecnico matches either the negotiating or the
// responsible technician.
type EscalaFilter struct {
	DataInicio    string
	DataFim       string
	IDFrigorifico uint
	IDProdutor    uint
	IDTecnico     uint
}

// EscalaRepository defines the storage operations for schedule entries, plus
// the lookup lists the schedule forms need.
type EscalaRepository interface {
	List(ctx context.Context) ([]models.EscalaAbate, error)
	ListFiltered(ctx context.Context, filter EscalaFilter) ([]models.EscalaAbate, error)
	Get(ctx context.Context, id uint) (*models.EscalaAbate, error)
	Create(ctx context.Context, e *models.EscalaAbate) error
	Update(ctx context.Context, e *models.EscalaAbate) error
	Delete(ctx context.Context, id uint) error

	ListProtocolos(ctx context.Context) ([]models.Protocolo, error)
	ListTecnicos(ctx context.Context) ([]models.Tecnico, error)
}

type escalaRepository struct {
	db *gorm.DB
}

// NewEscalaRepository creates a schedule entry repository backed by gorm.
func NewEscalaRepository(db *gorm.DB) EscalaRepository {
	return &escalaRepository{db: db}
}

func (r *escalaRepository) withJoins(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Frigorifico").
		Preload("Produtor").
		Preload("Propriedade").
		Preload("Protocolo").
		Preload("TecnicoNegociador").
		Preload("TecnicoNegociador.Usuario").
		Preload("TecnicoResponsavel").
		Preload("TecnicoResponsavel.Usuario")
}

func (r *escalaRepository) List(ctx context.Context) ([]models.EscalaAbate, error) {
	var escalas []models.EscalaAbate
	if err := r.withJoins(ctx).Order("data_abate desc").Find(&escalas).Error; err != nil {
		return nil, fmt.Errorf("list escala de abates: %w", err)
	}
	return escalas, nil
}

func (r *escalaRepository) ListFiltered(ctx context.Context, filter EscalaFilter) ([]models.EscalaAbate, error) {
	query := r.withJoins(ctx)
	if filter.DataInicio != "" {
		query = query.Where("data_abate >= ?", filter.DataInicio)
	}
	if filter.DataFim != "" {
		query = query.Where("data_abate <= ?", filter.DataFim)
	}
	if filter.IDFrigorifico != 0 {
		query = query.Where("id_frigorifico = ?", filter.IDFrigorifico)
	}
	if filter.IDProdutor != 0 {
		query = query.Where("id_produtor = ?", filter.IDProdutor)
	}
	if filter.IDTecnico != 0 {
		query = query.Where("id_tecnico_negociador = ? OR id_tecnico_responsavel = ?", filter.IDTecnico, filter.IDTecnico)
	}

	var escalas []models.EscalaAbate
	if err := query.Order("data_abate").Find(&escalas).Error; err != nil {
		return nil, fmt.Errorf("list escala filtrada: %w", err)
	}
	return escalas, nil
}

func (r *escalaRepository) Get(ctx context.Context, id uint) (*models.EscalaAbate, error) {
	var escala models.EscalaAbate
	if err := r.withJoins(ctx).First(&escala, id).Error; err != nil {
		return nil, fmt.Errorf("get escala %d: %w", id, err)
	}
	return &escala, nil
}

func (r *escalaRepository) Create(ctx context.Context, e *models.EscalaAbate) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("create escala: %w", err)
	}
	return nil
}

func (r *escalaRepository) Update(ctx context.Context, e *models.EscalaAbate) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("update escala %d: %w", e.ID, err)
	}
	return nil
}

func (r *escalaRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.EscalaAbate{}, id).Error; err != nil {
		return fmt.Errorf("delete escala %d: %w", id, err)
	}
	return nil
}

func (r *escalaRepository) ListProtocolos(ctx context.Context) ([]models.Protocolo, error) {
	var protocolos []models.Protocolo
	if err := r.db.WithContext(ctx).Order("nome").Find(&protocolos).Error; err != nil {
		return nil, fmt.Errorf("list protocolos: %w", err)
	}
	return protocolos, nil
}

func (r *escalaRepository) ListTecnicos(ctx context.Context) ([]models.Tecnico, error) {
	var tecnicos []models.Tecnico
	if err := r.db.WithContext(ctx).Preload("Usuario").Order("empresa").Find(&tecnicos).Error; err != nil {
		return nil, fmt.Errorf("list tecnicos: %w", err)
	}
	return tecnicos, nil
}
