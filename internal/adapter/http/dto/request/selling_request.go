package request

import (
	"errors"
	"strings"
)

var ErrUnsupportedStatus = errors.New("unsupported status")

// Target statuses a party may request on an open transaction. Expiry is
// system-driven and never accepted from a client.
const (
	StatusActionDone      = "done"
	StatusActionCancelled = "cancelled"
)

type CreateSellingRequest struct {
	RealEstateID string  `json:"real_estate_id" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	SalePeriod   int     `json:"sale_period" binding:"required"`
}

// UpdateSellingRequest carries the requested target status for a selling:
// "done" (seller confirms receipt) or "cancelled".
type UpdateSellingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateSellingRequest) ResolveStatus() (string, error) {
	return resolveStatusAction(r.Status)
}

func resolveStatusAction(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case StatusActionDone, StatusActionCancelled:
		return s, nil
	}
	return "", ErrUnsupportedStatus
}
