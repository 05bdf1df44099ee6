package request

type CreateDonatingRequest struct {
	RealEstateID string `json:"real_estate_id" binding:"required"`
	Grantee      string `json:"grantee" binding:"required"`
}

// UpdateDonatingRequest carries the requested target status for a donation:
// "done" (grantee confirms receipt) or "cancelled".
type UpdateDonatingRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateDonatingRequest) ResolveStatus() (string, error) {
	return resolveStatusAction(r.Status)
}
