// Package sqlstore implements the robot entity store on gorm, backed by
// SQLite (pure Go, no cgo) or PostgreSQL.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/platform/config"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

// Compile-time interface check.
var _ ports.RobotStore = (*Store)(nil)

// Store is a gorm-backed [ports.RobotStore]. The underlying connection pool
// is safe for concurrent use.
type Store struct {
	db   *gorm.DB
	name string
}

// Open connects to the database named by cfg.Driver and cfg.DSN, applies the
// pool settings and migrates the robot table.
func Open(cfg *config.StoreConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newSlogAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing %s connection pool: %w", cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(&robotRecord{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrating robot table: %w", err)
	}

	return &Store{db: db, name: "store." + cfg.Driver}, nil
}

func newDialector(cfg *config.StoreConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", cfg.Driver)
	}
}

// Save inserts the robot when it has no ID. With an ID it updates the
// matching row, and when none matches it inserts a new row with a generated
// ID rather than the one given.
func (s *Store) Save(ctx context.Context, r *robot.Robot) (*robot.Robot, error) {
	rec := fromDomain(r)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.HasID() {
			res := tx.Model(&robotRecord{}).Where("id = ?", rec.ID).Update("name", rec.Name)
			if res.Error != nil {
				return fmt.Errorf("updating robot %d: %w", rec.ID, res.Error)
			}
			if res.RowsAffected > 0 {
				return nil
			}
			rec.ID = 0
		}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("inserting robot: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

// FindAll returns every robot. A zero sort yields ID order; otherwise ties
// left by the requested criteria fall back to ascending ID, matching
// robot.Sort.Compare.
func (s *Store) FindAll(ctx context.Context, sort robot.Sort) ([]robot.Robot, error) {
	q := s.db.WithContext(ctx).Model(&robotRecord{})
	byID := false
	for _, o := range sort {
		byID = byID || o.Field == robot.FieldID
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: string(o.Field)},
			Desc:   o.Descending(),
		})
	}
	if !byID {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	var recs []robotRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("listing robots: %w", err)
	}

	robots := make([]robot.Robot, 0, len(recs))
	for i := range recs {
		robots = append(robots, *recs[i].toDomain())
	}
	return robots, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*robot.Robot, bool, error) {
	var rec robotRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("finding robot %d: %w", id, err)
	}
	return rec.toDomain(), true, nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&robotRecord{}).Error; err != nil {
		return fmt.Errorf("deleting robot %d: %w", id, err)
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&robotRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("counting robots: %w", err)
	}
	return n, nil
}

// Name identifies the store in readiness results.
func (s *Store) Name() string {
	return s.name
}

// HealthCheck pings the database through the connection pool.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
