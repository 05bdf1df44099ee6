package request

// CreateRealEstateRequest registers a parcel. Proprietor is optional; when
// present it must name the acting account, since accounts register only
// parcels they own themselves.
type CreateRealEstateRequest struct {
	Proprietor  string  `json:"proprietor"`
	TotalArea   float64 `json:"total_area" binding:"required"`
	LivingSpace float64 `json:"living_space" binding:"required"`
}
