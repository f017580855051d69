package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"Tracker/internal/cache"
	dom "Tracker/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTaskRepo serves a fixed list after a delay, slow enough for two
// concurrent List calls to land in the same singleflight flight.
type stubTaskRepo struct {
	delay time.Duration
	tasks []dom.Task
}

func (s *stubTaskRepo) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	time.Sleep(s.delay)
	out := make([]dom.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *stubTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	return t, nil
}

func (s *stubTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	return dom.Task{}, ErrNotFound
}

func (s *stubTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	return dom.Task{}, ErrNotFound
}

func (s *stubTaskRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	return ErrNotFound
}

func (s *stubTaskRepo) MarkDone(ctx context.Context, userID, id int64, done bool) (dom.Task, error) {
	return dom.Task{}, ErrNotFound
}

// unreachableCache returns a TaskCache whose Redis never answers, so every
// Get misses with an error and List falls through to the repo.
func unreachableCache() *cache.TaskCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 10 * time.Millisecond,
		MaxRetries:  -1,
	})
	return cache.NewTaskCache(rdb, time.Minute)
}

// Callers coalesced into one flight must each get their own slice: handlers
// sort the result in place, and a shared backing array would let one request
// reorder another's response mid-flight.
func TestListCoalescedCallersGetIndependentSlices(t *testing.T) {
	repo := &stubTaskRepo{
		delay: 100 * time.Millisecond,
		tasks: []dom.Task{
			{ID: 1, UserID: 7, Title: "water plants"},
			{ID: 2, UserID: 7, Title: "file taxes"},
			{ID: 3, UserID: 7, Title: "call dentist"},
		},
	}
	svc := NewTaskService(repo, unreachableCache(), nil)

	var wg sync.WaitGroup
	lists := make([][]dom.Task, 2)
	errs := make([]error, 2)
	for i := range lists {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lists[i], errs[i] = svc.List(context.Background(), 7)
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	require.Len(t, lists[0], 3)
	require.Len(t, lists[1], 3)
	assert.Equal(t, lists[0], lists[1])
	assert.NotSame(t, &lists[0][0], &lists[1][0])

	// Reordering one caller's slice must leave the other's untouched.
	lists[0][0], lists[0][2] = lists[0][2], lists[0][0]
	assert.Equal(t, int64(1), lists[1][0].ID)
	assert.Equal(t, int64(3), lists[1][2].ID)
}
