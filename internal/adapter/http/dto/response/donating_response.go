package response

import (
	"time"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

type DonatingResponse struct {
	DonatingID       string    `json:"donating_id"`
	ObjectOfDonating string    `json:"object_of_donating"`
	Donor            string    `json:"donor"`
	Grantee          string    `json:"grantee"`
	Status           string    `json:"status"`
	CreateTime       time.Time `json:"create_time"`
	UpdateTime       time.Time `json:"update_time"`
	Actions          []string  `json:"actions,omitempty"`
}

func FromDonating(d entities.Donating, actor entities.Account) DonatingResponse {
	return DonatingResponse{
		DonatingID:       d.DonatingID,
		ObjectOfDonating: d.ObjectOfDonating,
		Donor:            d.Donor,
		Grantee:          d.Grantee,
		Status:           string(d.Status),
		CreateTime:       d.CreateTime,
		UpdateTime:       d.UpdateTime,
		Actions:          actionStrings(entities.DonatingActions(d, actor)),
	}
}

func FromDonatingList(list []entities.Donating, actor entities.Account) []DonatingResponse {
	out := make([]DonatingResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromDonating(d, actor))
	}
	return out
}
