package response

import (
	"time"

	"github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"
)

type SellingResponse struct {
	SellingID    string    `json:"selling_id"`
	ObjectOfSale string    `json:"object_of_sale"`
	Seller       string    `json:"seller"`
	Buyer        string    `json:"buyer,omitempty"`
	Price        float64   `json:"price"`
	SalePeriod   int       `json:"sale_period"`
	Status       string    `json:"status"`
	CreateTime   time.Time `json:"create_time"`
	UpdateTime   time.Time `json:"update_time"`
	// Actions the requesting account may perform right now; empty for
	// admins, non-parties, and terminal records.
	Actions []string `json:"actions,omitempty"`
}

func FromSelling(s entities.Selling, actor entities.Account) SellingResponse {
	return SellingResponse{
		SellingID:    s.SellingID,
		ObjectOfSale: s.ObjectOfSale,
		Seller:       s.Seller,
		Buyer:        s.Buyer,
		Price:        s.Price,
		SalePeriod:   s.SalePeriod,
		Status:       string(s.Status),
		CreateTime:   s.CreateTime,
		UpdateTime:   s.UpdateTime,
		Actions:      actionStrings(entities.SellingActions(s, actor)),
	}
}

func FromSellingList(list []entities.Selling, actor entities.Account) []SellingResponse {
	out := make([]SellingResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSelling(s, actor))
	}
	return out
}

func actionStrings(actions []entities.Action) []string {
	if len(actions) == 0 {
		return nil
	}
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a))
	}
	return out
}
