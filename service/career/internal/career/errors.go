package career

import "UltimateCareer/service/career/internal/apperr"

// Errori di dominio usati da service/repo e mappati nel layer gRPC.
var (
	ErrCareerNotFound   = apperr.NotFound("Career not found")
	ErrForbidden        = apperr.Forbidden("You can only manage your own career")
	ErrTeamNotFound     = apperr.NotFound("Team not found")
	ErrDivisionNotFound = apperr.NotFound("No division found for this championship")
	ErrSeasonNotFound   = apperr.NotFound("Season not found")
)

// ErrTerminalStatus indica un tentativo di uscire da uno stato terminale.
var ErrTerminalStatus = apperr.Conflict("Career status is terminal and cannot change")
