package request

import (
	"strings"

	"github.com/marketdash/market-dashboard-backend/internal/apperrors"
)

// AddLocationRequest resolves a free-text query into a location record.
type AddLocationRequest struct {
	Query string `json:"query"`
}

// Validate checks the query is non-empty.
func (r *AddLocationRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return apperrors.ErrInvalidQuery
	}
	return nil
}
