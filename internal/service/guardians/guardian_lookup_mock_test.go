package guardians

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/carewatch/carewatch-backend/internal/domain"
)

var _ guardianLookup = &guardianLookupMock{}

type guardianLookupMock struct {
	ListActiveGuardiansFunc func(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error)

	calls struct {
		ListActiveGuardians []struct {
			Ctx             context.Context
			ProtectedUserID uuid.UUID
		}
	}
	lockListActiveGuardians sync.RWMutex
}

func (mock *guardianLookupMock) ListActiveGuardians(ctx context.Context, protectedUserID uuid.UUID) ([]domain.GuardianRecipient, error) {
	if mock.ListActiveGuardiansFunc == nil {
		panic("guardianLookupMock.ListActiveGuardiansFunc: method is nil but guardianLookup.ListActiveGuardians was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		ProtectedUserID uuid.UUID
	}{Ctx: ctx, ProtectedUserID: protectedUserID}
	mock.lockListActiveGuardians.Lock()
	mock.calls.ListActiveGuardians = append(mock.calls.ListActiveGuardians, callInfo)
	mock.lockListActiveGuardians.Unlock()
	return mock.ListActiveGuardiansFunc(ctx, protectedUserID)
}

func (mock *guardianLookupMock) ListActiveGuardiansCalls() []struct {
	Ctx             context.Context
	ProtectedUserID uuid.UUID
} {
	mock.lockListActiveGuardians.RLock()
	calls := mock.calls.ListActiveGuardians
	mock.lockListActiveGuardians.RUnlock()
	return calls
}
