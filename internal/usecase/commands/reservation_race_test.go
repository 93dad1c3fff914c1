//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"reservation-service/internal/domain/reservation"
	"reservation-service/internal/infra"
	"reservation-service/internal/pkg/errs"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReservationStore mirrors the guarded-statement semantics of the real
// repository: each mutation is atomic under one lock, and a cancelled record
// rejects every further transition.
type fakeReservationStore struct {
	mu   sync.Mutex
	recs map[string]*queries.ReservationView
}

func newFakeReservationStore() *fakeReservationStore {
	return &fakeReservationStore{recs: make(map[string]*queries.ReservationView)}
}

func (f *fakeReservationStore) snapshot(id string) *queries.ReservationView {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := *f.recs[id]
	return &v
}

func (f *fakeReservationStore) Create(_ context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v := &queries.ReservationView{ID: rec.ID(), CustomerName: rec.CustomerName(), Status: rec.Status().String()}
	f.recs[rec.ID()] = v
	out := *v
	return &out, nil
}

func (f *fakeReservationStore) UpdateStatus(_ context.Context, id string, status reservation.Status, tableNumber *string) (*queries.ReservationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.recs[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errs.New("zero rows"), infra.KindNotFound)
	}
	if v.Status == reservation.StatusCancelled.String() {
		return nil, infra.WrapRepoErr("record is cancelled", errs.New("guard"), infra.KindConflict)
	}
	if !reservation.Status(v.Status).CanTransitionTo(status) {
		return nil, infra.WrapRepoErr("transition rejected", errs.New("guard"), infra.KindInvalidTransition)
	}
	v.Status = status.String()
	if tableNumber != nil {
		v.TableNumber = tableNumber
	}
	out := *v
	return &out, nil
}

func (f *fakeReservationStore) Approve(ctx context.Context, id string, tableNumber string) (*queries.ReservationView, error) {
	return f.UpdateStatus(ctx, id, reservation.StatusConfirmed, &tableNumber)
}

func (f *fakeReservationStore) UpsertConfirmed(_ context.Context, rec *reservation.Reservation) (*queries.ReservationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.recs[rec.ID()]
	if ok && v.Status == reservation.StatusCancelled.String() {
		out := *v
		return &out, nil
	}
	v = &queries.ReservationView{
		ID:           rec.ID(),
		CustomerName: rec.CustomerName(),
		Status:       reservation.StatusConfirmed.String(),
		TableNumber:  rec.TableNumber(),
		TableStatus:  rec.TableStatus(),
	}
	f.recs[rec.ID()] = v
	out := *v
	return &out, nil
}

func (f *fakeReservationStore) Cancel(_ context.Context, id string) (*queries.ReservationView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.recs[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", errs.New("zero rows"), infra.KindNotFound)
	}
	if v.Status == reservation.StatusCancelled.String() {
		return nil, infra.WrapRepoErr("already cancelled", errs.New("guard"), infra.KindConflict)
	}
	v.Status = reservation.StatusCancelled.String()
	out := *v
	return &out, nil
}

// noopGateway absorbs best-effort calls; concurrency tests only care about
// store-side linearization.
type noopGateway struct{}

func (noopGateway) RequestAllocation(string, string) {}
func (noopGateway) ReleaseTable(string)              {}
func (noopGateway) SyncReview(queries.ReviewView)    {}

func TestConcurrentTransitionsLinearize(t *testing.T) {
	store := newFakeReservationStore()
	uc := commands.NewReservationCommands(store, noopGateway{})
	ctx := context.Background()

	result, err := uc.Create(ctx, "Mallory")
	require.NoError(t, err)
	id := result.Reservation.ID

	const workers = 16
	var wg sync.WaitGroup
	outcomes := make(chan error, workers*2)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ApplyConfirmation(ctx, commands.ConfirmationEvent{
				Source:        commands.SourceApproval,
				ReservationID: id,
				TableNumber:   strPtr("5"),
			})
			outcomes <- err
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Cancel(ctx, id)
			outcomes <- err
		}()
	}
	wg.Wait()
	close(outcomes)

	var conflicts int
	for err := range outcomes {
		switch {
		case err == nil:
		case errors.Is(err, commands.ErrReservationCancelled):
			conflicts++
		default:
			t.Fatalf("unexpected outcome: %v", err)
		}
	}

	// Exactly one cancel can win; every operation after it conflicts.
	final := store.snapshot(id)
	assert.Equal(t, reservation.StatusCancelled.String(), final.Status)
	assert.GreaterOrEqual(t, conflicts, workers-1)
}

func TestConcurrentNotificationsConvergeToOneRecord(t *testing.T) {
	store := newFakeReservationStore()
	uc := commands.NewReservationCommands(store, noopGateway{})
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ApplyConfirmation(ctx, commands.ConfirmationEvent{
				Source:        commands.SourceNotification,
				ReservationID: "reserv-shared",
				CustomerName:  "Grace",
				TableNumber:   strPtr("1"),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	final := store.snapshot("reserv-shared")
	assert.Equal(t, reservation.StatusConfirmed.String(), final.Status)
	require.NotNil(t, final.TableNumber)
	assert.Equal(t, "1", *final.TableNumber)
}
