package escalation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
	"github.com/carewatch/carewatch-backend/internal/service/fanout"
)

var (
	_ lifecycleManager = &lifecycleManagerMock{}
	_ guardianResolver = &guardianResolverMock{}
	_ alertDispatcher  = &alertDispatcherMock{}
)

type lifecycleManagerMock struct {
	CreateFunc       func(ctx context.Context, event domain.TriggerEvent, severity domain.Severity) (*domain.Emergency, error)
	MarkNotifiedFunc func(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID) (*domain.Emergency, error)
	ResolveFunc      func(ctx context.Context, id, resolvedBy uuid.UUID, notes *string) (*domain.Emergency, error)
	CancelFunc       func(ctx context.Context, id, cancelledBy uuid.UUID) (*domain.Emergency, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Emergency, error)
	ListOpenFunc     func(ctx context.Context) ([]*domain.Emergency, error)
	HistoryFunc      func(ctx context.Context, filter domain.EmergencyFilter) (domain.Page[*domain.Emergency], error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			Event    domain.TriggerEvent
			Severity domain.Severity
		}
		MarkNotified []struct {
			Ctx         context.Context
			ID          uuid.UUID
			GuardianIDs []uuid.UUID
		}
		Resolve []struct {
			Ctx        context.Context
			ID         uuid.UUID
			ResolvedBy uuid.UUID
			Notes      *string
		}
		Cancel []struct {
			Ctx         context.Context
			ID          uuid.UUID
			CancelledBy uuid.UUID
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListOpen []struct {
			Ctx context.Context
		}
		History []struct {
			Ctx    context.Context
			Filter domain.EmergencyFilter
		}
	}
	lockCreate       sync.RWMutex
	lockMarkNotified sync.RWMutex
	lockResolve      sync.RWMutex
	lockCancel       sync.RWMutex
	lockGet          sync.RWMutex
	lockListOpen     sync.RWMutex
	lockHistory      sync.RWMutex
}

func (mock *lifecycleManagerMock) Create(ctx context.Context, event domain.TriggerEvent, severity domain.Severity) (*domain.Emergency, error) {
	if mock.CreateFunc == nil {
		panic("lifecycleManagerMock.CreateFunc: method is nil but lifecycleManager.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Event    domain.TriggerEvent
		Severity domain.Severity
	}{Ctx: ctx, Event: event, Severity: severity}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, event, severity)
}

func (mock *lifecycleManagerMock) CreateCalls() []struct {
	Ctx      context.Context
	Event    domain.TriggerEvent
	Severity domain.Severity
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *lifecycleManagerMock) MarkNotified(ctx context.Context, id uuid.UUID, guardianIDs []uuid.UUID) (*domain.Emergency, error) {
	if mock.MarkNotifiedFunc == nil {
		panic("lifecycleManagerMock.MarkNotifiedFunc: method is nil but lifecycleManager.MarkNotified was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		GuardianIDs []uuid.UUID
	}{Ctx: ctx, ID: id, GuardianIDs: guardianIDs}
	mock.lockMarkNotified.Lock()
	mock.calls.MarkNotified = append(mock.calls.MarkNotified, callInfo)
	mock.lockMarkNotified.Unlock()
	return mock.MarkNotifiedFunc(ctx, id, guardianIDs)
}

func (mock *lifecycleManagerMock) MarkNotifiedCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	GuardianIDs []uuid.UUID
} {
	mock.lockMarkNotified.RLock()
	calls := mock.calls.MarkNotified
	mock.lockMarkNotified.RUnlock()
	return calls
}

func (mock *lifecycleManagerMock) Resolve(ctx context.Context, id, resolvedBy uuid.UUID, notes *string) (*domain.Emergency, error) {
	if mock.ResolveFunc == nil {
		panic("lifecycleManagerMock.ResolveFunc: method is nil but lifecycleManager.Resolve was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ID         uuid.UUID
		ResolvedBy uuid.UUID
		Notes      *string
	}{Ctx: ctx, ID: id, ResolvedBy: resolvedBy, Notes: notes}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, id, resolvedBy, notes)
}

func (mock *lifecycleManagerMock) ResolveCalls() []struct {
	Ctx        context.Context
	ID         uuid.UUID
	ResolvedBy uuid.UUID
	Notes      *string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

func (mock *lifecycleManagerMock) Cancel(ctx context.Context, id, cancelledBy uuid.UUID) (*domain.Emergency, error) {
	if mock.CancelFunc == nil {
		panic("lifecycleManagerMock.CancelFunc: method is nil but lifecycleManager.Cancel was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ID          uuid.UUID
		CancelledBy uuid.UUID
	}{Ctx: ctx, ID: id, CancelledBy: cancelledBy}
	mock.lockCancel.Lock()
	mock.calls.Cancel = append(mock.calls.Cancel, callInfo)
	mock.lockCancel.Unlock()
	return mock.CancelFunc(ctx, id, cancelledBy)
}

func (mock *lifecycleManagerMock) CancelCalls() []struct {
	Ctx         context.Context
	ID          uuid.UUID
	CancelledBy uuid.UUID
} {
	mock.lockCancel.RLock()
	calls := mock.calls.Cancel
	mock.lockCancel.RUnlock()
	return calls
}

func (mock *lifecycleManagerMock) Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error) {
	if mock.GetFunc == nil {
		panic("lifecycleManagerMock.GetFunc: method is nil but lifecycleManager.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *lifecycleManagerMock) ListOpen(ctx context.Context) ([]*domain.Emergency, error) {
	if mock.ListOpenFunc == nil {
		panic("lifecycleManagerMock.ListOpenFunc: method is nil but lifecycleManager.ListOpen was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListOpen.Lock()
	mock.calls.ListOpen = append(mock.calls.ListOpen, callInfo)
	mock.lockListOpen.Unlock()
	return mock.ListOpenFunc(ctx)
}

func (mock *lifecycleManagerMock) History(ctx context.Context, filter domain.EmergencyFilter) (domain.Page[*domain.Emergency], error) {
	if mock.HistoryFunc == nil {
		panic("lifecycleManagerMock.HistoryFunc: method is nil but lifecycleManager.History was just called")
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

func (mock *lifecycleManagerMock) HistoryCalls() []struct {
	Ctx    context.Context
	Filter domain.EmergencyFilter
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

type guardianResolverMock struct {
	ResolveFunc func(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error)

	calls struct {
		Resolve []struct {
			Ctx             context.Context
			ProtectedUserID uuid.UUID
		}
	}
	lockResolve sync.RWMutex
}

func (mock *guardianResolverMock) Resolve(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error) {
	if mock.ResolveFunc == nil {
		panic("guardianResolverMock.ResolveFunc: method is nil but guardianResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ProtectedUserID uuid.UUID
	}{Ctx: ctx, ProtectedUserID: protectedUserID}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, protectedUserID)
}

func (mock *guardianResolverMock) ResolveCalls() []struct {
	Ctx             context.Context
	ProtectedUserID uuid.UUID
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}

type alertDispatcherMock struct {
	DispatchFunc func(ctx context.Context, e *domain.Emergency, recipients []domain.GuardianRecipient) fanout.Report

	calls struct {
		Dispatch []struct {
			Ctx        context.Context
			E          *domain.Emergency
			Recipients []domain.GuardianRecipient
		}
	}
	lockDispatch sync.RWMutex
}

func (mock *alertDispatcherMock) Dispatch(ctx context.Context, e *domain.Emergency, recipients []domain.GuardianRecipient) fanout.Report {
	if mock.DispatchFunc == nil {
		panic("alertDispatcherMock.DispatchFunc: method is nil but alertDispatcher.Dispatch was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		E          *domain.Emergency
		Recipients []domain.GuardianRecipient
	}{Ctx: ctx, E: e, Recipients: recipients}
	mock.lockDispatch.Lock()
	mock.calls.Dispatch = append(mock.calls.Dispatch, callInfo)
	mock.lockDispatch.Unlock()
	return mock.DispatchFunc(ctx, e, recipients)
}

func (mock *alertDispatcherMock) DispatchCalls() []struct {
	Ctx        context.Context
	E          *domain.Emergency
	Recipients []domain.GuardianRecipient
} {
	mock.lockDispatch.RLock()
	calls := mock.calls.Dispatch
	mock.lockDispatch.RUnlock()
	return calls
}
