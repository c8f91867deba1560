package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pecbr/acaboi/internal/config"
	"github.com/pecbr/acaboi/internal/domain/models"
)

// Connect opens the PostgreSQL store, runs schema migration and optionally
// seeds the lookup tables. The connection is retried a few times so the
// service survives a database that is still starting up.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Silent
	if cfg.Debug {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if cfg.Seed {
		seed(db)
	}

	return db, nil
}

// Migrate applies the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	entities := []interface{}{
		&models.Profile{},
		&models.Produtor{},
		&models.Propriedade{},
		&models.Frigorifico{},
		&models.CategoriaAnimal{},
		&models.Protocolo{},
		&models.Tecnico{},
		&models.Abate{},
		&models.EscalaAbate{},
	}
	for _, e := range entities {
		if err := db.AutoMigrate(e); err != nil {
			return fmt.Errorf("automigrate %T: %w", e, err)
		}
	}
	return nil
}

// seed inserts baseline lookup rows when they are missing (dev convenience,
// enabled via DB_SEED=1).
func seed(db *gorm.DB) {
	categorias := []models.CategoriaAnimal{
		{Nome: "Novilho Precoce"},
		{Nome: "Boi Castrado"},
		{Nome: "Boi Inteiro"},
		{Nome: "Vaca"},
		{Nome: "Novilha"},
	}
	for _, c := range categorias {
		var existing models.CategoriaAnimal
		if err := db.Where("nome = ?", c.Nome).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&c)
		}
	}

	protocolos := []models.Protocolo{
		{Nome: "TRACE"},
		{Nome: "HILTON"},
		{Nome: "Novilho Precoce"},
	}
	for _, p := range protocolos {
		var existing models.Protocolo
		if err := db.Where("nome = ?", p.Nome).First(&existing).Error; err == gorm.ErrRecordNotFound {
			db.Create(&p)
		}
	}
}
