package response

import (
	"time"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

type RealEstateResponse struct {
	RealEstateID string    `json:"real_estate_id"`
	Proprietor   string    `json:"proprietor"`
	TotalArea    float64   `json:"total_area"`
	LivingSpace  float64   `json:"living_space"`
	Encumbrance  bool      `json:"encumbrance"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromRealEstate(re entities.RealEstate) RealEstateResponse {
	return RealEstateResponse{
		RealEstateID: re.RealEstateID,
		Proprietor:   re.Proprietor,
		TotalArea:    re.TotalArea,
		LivingSpace:  re.LivingSpace,
		Encumbrance:  re.Encumbrance,
		CreatedAt:    re.CreatedAt,
	}
}

func FromRealEstateList(list []entities.RealEstate) []RealEstateResponse {
	out := make([]RealEstateResponse, 0, len(list))
	for _, re := range list {
		out = append(out, FromRealEstate(re))
	}
	return out
}
