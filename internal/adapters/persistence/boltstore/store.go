// Package boltstore implements the robot entity store on an embedded BoltDB
// file. Rows live in a single bucket keyed by the big-endian robot ID with the
// sign bit flipped, so cursor order is numeric ID order.
package boltstore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	bolt "github.com/boltdb/bolt"
	json "github.com/goccy/go-json"

	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
	"github.com/jsamuelsen11/robot-service/internal/platform/config"
	"github.com/jsamuelsen11/robot-service/internal/ports"
)

const bucketName = "robot"

const signBit = uint64(1) << 63

// Compile-time interface check.
var _ ports.RobotStore = (*Store)(nil)

// record is the stored JSON value.
type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Store is a BoltDB-backed [ports.RobotStore]. Bolt serializes writers
// internally and allows concurrent readers.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database file at cfg.Path and ensures the
// robot bucket exists. cfg.Timeout bounds the wait for the file lock.
func Open(cfg *config.StoreConfig) (*Store, error) {
	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("opening bolt file %s: %w", cfg.Path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating %s bucket: %w", bucketName, err)
	}

	return &Store{db: db}, nil
}

// Save assigns the next bucket sequence to robots without an ID. An explicit
// ID overwrites its row when one exists; otherwise the robot is stored under
// the next sequence value.
func (s *Store) Save(ctx context.Context, r *robot.Robot) (*robot.Robot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec := record{Name: r.Name}
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		if r.HasID() && b.Get(key(*r.ID)) != nil {
			rec.ID = *r.ID
		} else {
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			rec.ID = int64(seq)
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		return b.Put(key(rec.ID), data)
	})
	if err != nil {
		return nil, fmt.Errorf("saving robot: %w", err)
	}

	return rec.toDomain(), nil
}

// FindAll returns every robot in ID order, reordered by sort when non-zero.
func (s *Store) FindAll(ctx context.Context, sort robot.Sort) ([]robot.Robot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	robots := []robot.Robot{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(_, v []byte) error {
			var rec record
			if err := json.Unmarshal(v, &rec); err != nil {
				return err
			}
			robots = append(robots, *rec.toDomain())
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing robots: %w", err)
	}

	if !sort.IsZero() {
		sort.Apply(robots)
	}
	return robots, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*robot.Robot, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var (
		rec   record
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get(key(id))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &rec)
	})
	if err != nil {
		return nil, false, fmt.Errorf("finding robot %d: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return rec.toDomain(), true, nil
}

// DeleteByID removes the key. Bolt treats deleting a missing key as a no-op.
func (s *Store) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete(key(id))
	})
	if err != nil {
		return fmt.Errorf("deleting robot %d: %w", id, err)
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int64
	err := s.db.View(func(tx *bolt.Tx) error {
		n = int64(tx.Bucket([]byte(bucketName)).Stats().KeyN)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("counting robots: %w", err)
	}
	return n, nil
}

func (s *Store) Name() string {
	return "store.bolt"
}

// HealthCheck verifies the bucket is readable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) == nil {
			return errors.New("robot bucket missing")
		}
		return nil
	})
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

func (rec *record) toDomain() *robot.Robot {
	id := rec.ID
	return &robot.Robot{ID: &id, Name: rec.Name}
}

func key(id int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(id)^signBit)
	return b
}
