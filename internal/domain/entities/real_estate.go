package entities

import "time"

// RealEstate is a parcel in the asset ledger.
//
// Encumbrance is true exactly while one non-terminal Selling or Donating
// references the parcel. Only the transaction engine flips it, as a side
// effect of lifecycle transitions; a parcel with Encumbrance set cannot enter
// a new sale or donation.
//
// Storage model (DynamoDB):
//   - PK: real_estate_id

type RealEstate struct {
	RealEstateID string    `json:"real_estate_id"`
	Proprietor   string    `json:"proprietor"`
	TotalArea    float64   `json:"total_area"`
	LivingSpace  float64   `json:"living_space"`
	Encumbrance  bool      `json:"encumbrance"`
	CreatedAt    time.Time `json:"created_at"`
}
