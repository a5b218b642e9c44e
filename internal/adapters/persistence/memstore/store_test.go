package memstore_test

import (
	"context"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/jsamuelsen11/robot-service/internal/adapters/persistence/memstore"
	"github.com/jsamuelsen11/robot-service/internal/domain/robot"
)

func int64Ptr(v int64) *int64 { return &v }

func newStore(t *testing.T) *memstore.Store {
	t.Helper()
	s, err := memstore.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestStore_SaveInsertAndUpdate(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &robot.Robot{Name: "AAAAAAAAAA"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == nil || *saved.ID != 1 {
		t.Fatalf("Save().ID = %v, want 1", saved.ID)
	}

	updated, err := s.Save(ctx, &robot.Robot{ID: saved.ID, Name: "BBBBBBBBBB"})
	if err != nil {
		t.Fatalf("Save() update error = %v", err)
	}
	if *updated.ID != *saved.ID {
		t.Errorf("update changed id from %d to %d", *saved.ID, *updated.ID)
	}

	got, found, err := s.FindByID(ctx, *saved.ID)
	if err != nil || !found {
		t.Fatalf("FindByID() = (%v, %v), want found", found, err)
	}
	if got.Name != "BBBBBBBBBB" {
		t.Errorf("FindByID().Name = %q, want BBBBBBBBBB", got.Name)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestStore_SaveUnknownIDGetsFreshID(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	for _, id := range []int64{777, math.MaxInt64} {
		saved, err := s.Save(ctx, &robot.Robot{ID: int64Ptr(id), Name: "unknown"})
		if err != nil {
			t.Fatalf("Save(id=%d) error = %v", id, err)
		}
		if *saved.ID == id {
			t.Errorf("Save(id=%d) kept the unknown id", id)
		}
	}

	next, err := s.Save(ctx, &robot.Robot{Name: "next"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if *next.ID != 3 {
		t.Errorf("generated id = %d, want 3", *next.ID)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}
}

func TestStore_FindAllSortsNumerically(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	// Enough rows that varint index order diverges from numeric order.
	want := make([]int64, 0, 300)
	for range 300 {
		saved, err := s.Save(ctx, &robot.Robot{Name: "r"})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		want = append(want, *saved.ID)
	}

	got, err := s.FindAll(ctx, nil)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if ids := idsOf(got); !slices.Equal(ids, want) {
		t.Errorf("FindAll() ids not ascending: %v", ids)
	}

	desc, err := s.FindAll(ctx, robot.Sort{{Field: robot.FieldID, Direction: robot.Desc}})
	if err != nil {
		t.Fatalf("FindAll(desc) error = %v", err)
	}
	slices.Reverse(want)
	if ids := idsOf(desc); !slices.Equal(ids, want) {
		t.Errorf("FindAll(desc) ids not descending: %v", ids)
	}
}

func TestStore_FindAllEmpty(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	got, err := s.FindAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("FindAll() = %#v, want empty non-nil slice", got)
	}
}

func TestStore_FindByIDMissing(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	got, found, err := s.FindByID(context.Background(), 9223372036854775807)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found || got != nil {
		t.Errorf("FindByID() = (%+v, %v), want (nil, false)", got, found)
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	s := newStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, &robot.Robot{Name: "doomed"})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	for i := range 2 {
		if err := s.DeleteByID(ctx, *saved.ID); err != nil {
			t.Fatalf("DeleteByID() call %d error = %v", i+1, err)
		}
	}

	if _, found, _ := s.FindByID(ctx, *saved.ID); found {
		t.Error("robot still present after delete")
	}
}

func TestStore_ConcurrentInsertsGetDistinctIDs(t *testing.T) {
	t.Parallel()
	s := newStore(t)

	const workers = 32
	var (
		mu   sync.Mutex
		seen = make(map[int64]bool, workers)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Go(func() {
			saved, err := s.Save(context.Background(), &robot.Robot{Name: "worker"})
			if err != nil {
				t.Errorf("Save() error = %v", err)
				return
			}
			mu.Lock()
			seen[*saved.ID] = true
			mu.Unlock()
		})
	}
	wg.Wait()

	if len(seen) != workers {
		t.Errorf("distinct ids = %d, want %d", len(seen), workers)
	}
}

func idsOf(robots []robot.Robot) []int64 {
	out := make([]int64, 0, len(robots))
	for _, r := range robots {
		out = append(out, *r.ID)
	}
	return out
}
