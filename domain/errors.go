package domain

import "errors"

// Error taxonomy surfaced at the API boundary. Handlers translate these with
// errors.Is; everything else is treated as a persistence failure.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrTenantNotFound = errors.New("tenant not found")
	ErrNoArms         = errors.New("no arms found for tenant")
	ErrStatsNotFound  = errors.New("bandit stats not found")
	ErrNoCandidates   = errors.New("no candidate arms")
	ErrNoSelection    = errors.New("no arm could be selected")
	ErrTenantExists   = errors.New("tenant already exists")
	ErrArmExists      = errors.New("arm already exists for this tenant")
)
