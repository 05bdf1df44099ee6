package entities

import "time"

// SellingStatus represents the lifecycle of a sale proposal.

type SellingStatus string

const (
	SellingStatusOnSale     SellingStatus = "OnSale"     // waiting for a buyer
	SellingStatusInProgress SellingStatus = "InProgress" // buyer paid into escrow, waiting for the seller to confirm receipt
	SellingStatusCompleted  SellingStatus = "Completed"  // seller confirmed receipt, parcel transferred to the buyer
	SellingStatusExpired    SellingStatus = "Expired"    // sale period elapsed before completion
	SellingStatusCancelled  SellingStatus = "Cancelled"  // closed by the seller or the buyer
)

// Terminal reports whether the status accepts no further transitions.
func (s SellingStatus) Terminal() bool {
	switch s {
	case SellingStatusCompleted, SellingStatusExpired, SellingStatusCancelled:
		return true
	}
	return false
}

// Selling is a sale proposal over one parcel.
//
// Seller must equal the parcel's proprietor at creation time. Buyer stays
// empty until a purchase moves the sale to InProgress. Terminal records are
// kept as history, never deleted.
//
// Storage model (DynamoDB):
//   - PK: selling_id

type Selling struct {
	SellingID    string        `json:"selling_id"`
	ObjectOfSale string        `json:"object_of_sale"`
	Seller       string        `json:"seller"`
	Buyer        string        `json:"buyer,omitempty"`
	Price        float64       `json:"price"`
	SalePeriod   int           `json:"sale_period"`
	Status       SellingStatus `json:"status"`
	CreateTime   time.Time     `json:"create_time"`
	UpdateTime   time.Time     `json:"update_time"`
}

// Deadline is the instant the sale period elapses.
func (s Selling) Deadline() time.Time {
	return s.CreateTime.Add(time.Duration(s.SalePeriod) * 24 * time.Hour)
}

// Overdue reports whether the deadline has strictly elapsed at now.
func (s Selling) Overdue(now time.Time) bool {
	return now.After(s.Deadline())
}
