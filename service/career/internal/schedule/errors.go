package schedule

import "UltimateCareer/service/career/internal/apperr"

var (
	ErrTeamNotFound     = apperr.NotFound("Team not found")
	ErrRoundNotFound    = apperr.NotFound("Round not found")
	ErrMatchNotFound    = apperr.NotFound("Match not found")
	ErrDivisionNotFound = apperr.NotFound("Division not found")
	ErrRoundNumber      = apperr.Validation("Validation failed", apperr.FieldIssue{Field: "number", Message: "Round number must be at least 1"})
)
