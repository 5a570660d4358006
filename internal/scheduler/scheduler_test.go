package scheduler

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"adpilot/internal/core/port/mocks"
)

// recordingUnit counts per-customer invocations concurrently.
type recordingUnit struct {
	mu    sync.Mutex
	calls map[int64]int
}

func newRecordingUnit() *recordingUnit {
	return &recordingUnit{calls: make(map[int64]int)}
}

func (u *recordingUnit) record(id int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls[id]++
	return true
}

func (u *recordingUnit) Allocate(ctx context.Context, customerID int64) bool {
	return u.record(customerID)
}

func (u *recordingUnit) Scan(ctx context.Context, customerID int64) bool {
	return u.record(customerID)
}

func TestTickProcessesEveryCustomer(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	allocator := newRecordingUnit()
	optimizer := newRecordingUnit()
	s := New(campaigns, allocator, optimizer, 0, 2,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	campaigns.EXPECT().ListCustomerIDs(mock.Anything).
		Return([]int64{1, 2, 3}, nil)

	s.Tick(context.Background())

	for _, id := range []int64{1, 2, 3} {
		if allocator.calls[id] != 1 {
			t.Fatalf("customer %d: expected 1 allocation, got %d", id, allocator.calls[id])
		}
		if optimizer.calls[id] != 1 {
			t.Fatalf("customer %d: expected 1 scan, got %d", id, optimizer.calls[id])
		}
	}
}

func TestTickSurvivesListFailure(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	s := New(campaigns, newRecordingUnit(), newRecordingUnit(), 0, 2,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	campaigns.EXPECT().ListCustomerIDs(mock.Anything).
		Return(nil, context.DeadlineExceeded)

	// Must not panic or dispatch anything.
	s.Tick(context.Background())
}
