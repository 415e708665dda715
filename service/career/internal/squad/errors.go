package squad

import "UltimateCareer/service/career/internal/apperr"

// Errori di dominio usati da service/repo e mappati nel layer gRPC.
var (
	ErrTacticNotFound = apperr.NotFound("Tactic not found for this career")
	ErrTacticExists   = apperr.Conflict("Tactic already exists for this career")
	ErrLineupNotFound = apperr.NotFound("Lineup not found for this career")
	ErrPlayerNotFound = apperr.NotFound("Player not found")
)
