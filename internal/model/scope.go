package model

// Scope carries request-scoped identity through usecases.
type Scope struct {
	UserID    string
	RequestID string
}
