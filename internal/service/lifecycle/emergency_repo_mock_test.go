package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

var _ emergencyRepo = &emergencyRepoMock{}

type emergencyRepoMock struct {
	CreateFunc          func(ctx context.Context, e *domain.Emergency) (*domain.Emergency, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	MarkNotifiedFunc    func(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID, at time.Time) (*domain.Emergency, error)
	ResolveFunc         func(ctx context.Context, id, resolvedBy uuid.UUID, notes *string, at time.Time, responseSeconds int64) (*domain.Emergency, error)
	CancelFunc          func(ctx context.Context, id, cancelledBy uuid.UUID, at time.Time) (*domain.Emergency, error)
	ListOpenFunc        func(ctx context.Context) ([]*domain.Emergency, error)
	ListStaleActiveFunc func(ctx context.Context, olderThan time.Time) ([]*domain.Emergency, error)
	HistoryFunc         func(ctx context.Context, filter domain.EmergencyFilter) ([]*domain.Emergency, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.Emergency
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		MarkNotified []struct {
			Ctx         context.Context
			ID          uuid.UUID
			GuardianIDs []uuid.UUID
			At          time.Time
		}
		Resolve []struct {
			Ctx             context.Context
			ID              uuid.UUID
			ResolvedBy      uuid.UUID
			Notes           *string
			At              time.Time
			ResponseSeconds int64
		}
		Cancel []struct {
			Ctx         context.Context
			ID          uuid.UUID
			CancelledBy uuid.UUID
			At          time.Time
		}
		ListOpen []struct {
			Ctx context.Context
		}
		ListStaleActive []struct {
			Ctx       context.Context
			OlderThan time.Time
		}
		History []struct {
			Ctx    context.Context
			Filter domain.EmergencyFilter
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockMarkNotified    sync.RWMutex
	lockResolve         sync.RWMutex
	lockCancel          sync.RWMutex
	lockListOpen        sync.RWMutex
	lockListStaleActive sync.RWMutex
	lockHistory         sync.RWMutex
}

func (mock *emergencyRepoMock) Create(ctx context.Context, e *domain.Emergency) (*domain.Emergency, error) {
	if mock.CreateFunc == nil {
		panic("emergencyRepoMock.CreateFunc: method is nil but emergencyRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.Emergency
	}{Ctx: ctx, E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *emergencyRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.Emergency
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Emergency, error) {
	if mock.GetByIDFunc == nil {
		panic("emergencyRepoMock.GetByIDFunc: method is nil but emergencyRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *emergencyRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) MarkNotified(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID, at time.Time) (*domain.Emergency, error) {
	if mock.MarkNotifiedFunc == nil {
		panic("emergencyRepoMock.MarkNotifiedFunc: method is nil but emergencyRepo.MarkNotified was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		GuardianIDs []uuid.UUID
		At          time.Time
	}{Ctx: ctx, ID: id, GuardianIDs: guardianIDs, At: at}
	mock.lockMarkNotified.Lock()
	mock.calls.MarkNotified = append(mock.calls.MarkNotified, callInfo)
	mock.lockMarkNotified.Unlock()
	return mock.MarkNotifiedFunc(ctx, id, guardianIDs, at)
}

func (mock *emergencyRepoMock) MarkNotifiedCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	GuardianIDs []uuid.UUID
	At          time.Time
} {
	mock.lockMarkNotified.RLock()
	calls := mock.calls.MarkNotified
	mock.lockMarkNotified.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes *string, at time.Time, responseSeconds int64) (*domain.Emergency, error) {
	if mock.ResolveFunc == nil {
		panic("emergencyRepoMock.ResolveFunc: method is nil but emergencyRepo.Resolve was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ID              uuid.UUID
		ResolvedBy      uuid.UUID
		Notes           *string
		At              time.Time
		ResponseSeconds int64
	}{Ctx: ctx, ID: id, ResolvedBy: resolvedBy, Notes: notes, At: at, ResponseSeconds: responseSeconds}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id, resolvedBy, notes, at, responseSeconds)
}

func (mock *emergencyRepoMock) ResolveCalls() []struct {
	Ctx             context.Context
	ID              uuid.UUID
	ResolvedBy      uuid.UUID
	Notes           *string
	At              time.Time
	ResponseSeconds int64
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) Cancel(ctx context.Context, id, cancelledBy uuid.UUID, at time.Time) (*domain.Emergency, error) {
	if mock.CancelFunc == nil {
		panic("emergencyRepoMock.CancelFunc: method is nil but emergencyRepo.Cancel was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		CancelledBy uuid.UUID
		At          time.Time
	}{Ctx: ctx, ID: id, CancelledBy: cancelledBy, At: at}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, id, cancelledBy, at)
}

func (mock *emergencyRepoMock) CancelCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	CancelledBy uuid.UUID
	At          time.Time
} {
	mock.lockCancel.RLock()
	calls := mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) ListOpen(ctx context.Context) ([]*domain.Emergency, error) {
	if mock.ListOpenFunc == nil {
		panic("emergencyRepoMock.ListOpenFunc: method is nil but emergencyRepo.ListOpen was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListOpen.Lock()
	mock.calls.ListOpen = append(mock.calls.ListOpen, callInfo)
	mock.lockListOpen.Unlock()
	return mock.ListOpenFunc(ctx)
}

func (mock *emergencyRepoMock) ListOpenCalls() []struct {
	Ctx context.Context
} {
	mock.lockListOpen.RLock()
	calls := mock.calls.ListOpen
	mock.lockListOpen.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) ListStaleActive(ctx context.Context, olderThan time.Time) ([]*domain.Emergency, error) {
	if mock.ListStaleActiveFunc == nil {
		panic("emergencyRepoMock.ListStaleActiveFunc: method is nil but emergencyRepo.ListStaleActive was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OlderThan time.Time
	}{Ctx: ctx, OlderThan: olderThan}
	mock.lockListStaleActive.Lock()
	mock.calls.ListStaleActive = append(mock.calls.ListStaleActive, callInfo)
	mock.lockListStaleActive.Unlock()
	return mock.ListStaleActiveFunc(ctx, olderThan)
}

func (mock *emergencyRepoMock) ListStaleActiveCalls() []struct {
	Ctx       context.Context
	OlderThan time.Time
} {
	mock.lockListStaleActive.RLock()
	calls := mock.calls.ListStaleActive
	mock.lockListStaleActive.RUnlock()
	return calls
}

func (mock *emergencyRepoMock) History(ctx context.Context, filter domain.EmergencyFilter) ([]*domain.Emergency, int, error) {
	if mock.HistoryFunc == nil {
		panic("emergencyRepoMock.HistoryFunc: method is nil but emergencyRepo.History was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.EmergencyFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, filter)
}

func (mock *emergencyRepoMock) HistoryCalls() []struct {
	Ctx    context.Context
	Filter domain.EmergencyFilter
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}
