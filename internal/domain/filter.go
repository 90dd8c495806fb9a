package domain

import "github.com/google/uuid"

// EmergencyFilter contains filtering/pagination parameters for emergency
// history queries. Results are ordered newest first.
type EmergencyFilter struct {
	ProtectedUserID *uuid.UUID
	Status          *EmergencyStatus
	Limit           int
	Offset          int
}

// Page wraps one page of results with the total row count.
type Page[T any] struct {
	Items []T
	Total int
}
