package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/novamart-dev/storefront-session/pkg/config"
)

// Snapshot is the single table backing the SQL adapter: one row per key.
type Snapshot struct {
	Name      string `gorm:"primaryKey"`
	Payload   []byte
	UpdatedAt time.Time
}

// Gorm persists snapshots in a relational database through gorm. It serves
// both the sqlite and postgres backends.
type Gorm struct {
	db *gorm.DB
}

// OpenGorm opens the configured database and migrates the snapshot table.
func OpenGorm(cfg config.StorageConfig) (*Gorm, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Backend) {
	case config.StorageBackendSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.StorageBackendPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("backend %q is not database-backed", cfg.Backend)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}
	return NewGorm(db)
}

// NewGorm wraps an existing gorm handle; used by tests.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if db == nil {
		return nil, errors.New("gorm db required")
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrating snapshots: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Save(ctx context.Context, key string, raw []byte) error {
	snapshot := Snapshot{Name: key, Payload: raw, UpdatedAt: time.Now().UTC()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(&snapshot).Error
}

func (g *Gorm) Load(ctx context.Context, key string) ([]byte, error) {
	var snapshot Snapshot
	err := g.db.WithContext(ctx).First(&snapshot, "name = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return snapshot.Payload, nil
}

// Close releases the underlying connection pool.
func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
