package market

import "UltimateCareer/service/career/internal/apperr"

var (
	ErrPlayerNotFound     = apperr.NotFound("Player not found")
	ErrNotOwnPlayer       = apperr.Forbidden("You can only sell players from your own team")
	ErrNotManageable      = apperr.Forbidden("You can only manage players from your own team")
	ErrNotForSale         = apperr.Conflict("Player is not for sale")
	ErrAlreadyOwned       = apperr.Conflict("Player already belongs to your team")
	ErrPlayerLocked       = apperr.Conflict("Player is locked")
	ErrOfferTooLow        = apperr.Validation("Offer below asking price", apperr.FieldIssue{Field: "offer_price", Message: "Offer must be at least the asking price"})
	ErrInsufficientBudget = apperr.Validation("Insufficient budget", apperr.FieldIssue{Field: "offer_price", Message: "Insufficient budget"})
)
