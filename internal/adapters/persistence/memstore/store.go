// Package memstore implements the robot entity store on hashicorp/go-memdb.
// Data lives only as long as the process; it backs tests and the "memory"
// driver.
package memstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-memdb"

	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

const (
	tableName = "robot"
	indexID   = "id"
)

// Compile-time interface check.
var _ ports.RobotStore = (*Store)(nil)

type row struct {
	ID   int64
	Name string
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableName: {
				Name: tableName,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.IntFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// Store is a go-memdb backed [ports.RobotStore].
type Store struct {
	db *memdb.MemDB

	// lastID is only read and written inside write transactions, which
	// memdb serializes.
	lastID int64
}

// New creates an empty store.
func New() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("creating memdb: %w", err)
	}
	return &Store{db: db}, nil
}

// Save assigns the next ID to robots without one. An explicit ID replaces its
// row when one exists; otherwise the robot gets the next ID instead.
func (s *Store) Save(ctx context.Context, r *robot.Robot) (*robot.Robot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	rec := &row{Name: r.Name}
	nextID := s.lastID
	existing, err := stored(txn, r)
	if err != nil {
		return nil, err
	}
	if existing {
		rec.ID = *r.ID
	} else {
		nextID++
		rec.ID = nextID
	}

	if err := txn.Insert(tableName, rec); err != nil {
		return nil, fmt.Errorf("saving robot: %w", err)
	}
	s.lastID = nextID
	txn.Commit()

	return rec.toDomain(), nil
}

// stored reports whether r carries the ID of a stored row.
func stored(txn *memdb.Txn, r *robot.Robot) (bool, error) {
	if !r.HasID() {
		return false, nil
	}
	raw, err := txn.First(tableName, indexID, *r.ID)
	if err != nil {
		return false, fmt.Errorf("looking up robot %d: %w", *r.ID, err)
	}
	return raw != nil, nil
}

// FindAll returns every robot in ID order, or ordered by sort when non-zero.
func (s *Store) FindAll(ctx context.Context, sort robot.Sort) ([]robot.Robot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableName, indexID)
	if err != nil {
		return nil, fmt.Errorf("listing robots: %w", err)
	}

	robots := []robot.Robot{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		robots = append(robots, *obj.(*row).toDomain())
	}

	// The int index is varint encoded, so iteration order is not numeric.
	sort.Apply(robots)
	return robots, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*robot.Robot, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(tableName, indexID, id)
	if err != nil {
		return nil, false, fmt.Errorf("finding robot %d: %w", id, err)
	}
	if obj == nil {
		return nil, false, nil
	}
	return obj.(*row).toDomain(), true, nil
}

func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	err := txn.Delete(tableName, &row{ID: id})
	if errors.Is(err, memdb.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting robot %d: %w", id, err)
	}
	txn.Commit()
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableName, indexID)
	if err != nil {
		return 0, fmt.Errorf("counting robots: %w", err)
	}

	var n int64
	for obj := it.Next(); obj != nil; obj = it.Next() {
		n++
	}
	return n, nil
}

func (s *Store) Name() string {
	return "store.memory"
}

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (r *row) toDomain() *robot.Robot {
	id := r.ID
	return &robot.Robot{ID: &id, Name: r.Name}
}
