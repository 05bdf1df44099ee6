package entities

import "time"

// DonatingStatus represents the lifecycle of a donation proposal.

type DonatingStatus string

const (
	DonatingStatusInProgress DonatingStatus = "InProgress" // waiting for the grantee to confirm receipt
	DonatingStatusDone       DonatingStatus = "Done"       // grantee confirmed, parcel transferred
	DonatingStatusCancelled  DonatingStatus = "Cancelled"  // closed by the donor or the grantee
)

func (s DonatingStatus) Terminal() bool {
	switch s {
	case DonatingStatusDone, DonatingStatusCancelled:
		return true
	}
	return false
}

// Donating is a donation proposal over one parcel.
//
// Donor must equal the parcel's proprietor at creation time; the grantee is
// fixed at creation and cannot be the donor. Donations carry no deadline;
// an InProgress donation stays open until a party acts.
//
// Storage model (DynamoDB):
//   - PK: donating_id

type Donating struct {
	DonatingID       string         `json:"donating_id"`
	ObjectOfDonating string         `json:"object_of_donating"`
	Donor            string         `json:"donor"`
	Grantee          string         `json:"grantee"`
	Status           DonatingStatus `json:"status"`
	CreateTime       time.Time      `json:"create_time"`
	UpdateTime       time.Time      `json:"update_time"`
}
