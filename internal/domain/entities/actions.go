package entities

// Action is an operation a given actor may currently perform on a record.
// Action sets are derived data for presentation layers, computed here once
// instead of per screen.

type Action string

const (
	ActionBuy    Action = "buy"
	ActionDone   Action = "done"
	ActionCancel Action = "cancel"
)

// SellingActions returns the actions actor may perform on s right now.
// Admins never act; the result follows the selling transition table.
func SellingActions(s Selling, actor Account) []Action {
	if actor.AccountID == "" || actor.IsAdmin() || s.Status.Terminal() {
		return nil
	}
	var actions []Action
	switch s.Status {
	case SellingStatusOnSale:
		if actor.AccountID != s.Seller {
			actions = append(actions, ActionBuy)
		}
		if actor.AccountID == s.Seller {
			actions = append(actions, ActionCancel)
		}
	case SellingStatusInProgress:
		if actor.AccountID == s.Seller {
			actions = append(actions, ActionDone)
		}
		if actor.AccountID == s.Seller || actor.AccountID == s.Buyer {
			actions = append(actions, ActionCancel)
		}
	}
	return actions
}

// DonatingActions returns the actions actor may perform on d right now.
func DonatingActions(d Donating, actor Account) []Action {
	if actor.AccountID == "" || actor.IsAdmin() || d.Status.Terminal() {
		return nil
	}
	var actions []Action
	if d.Status == DonatingStatusInProgress {
		if actor.AccountID == d.Grantee {
			actions = append(actions, ActionDone)
		}
		if actor.AccountID == d.Donor || actor.AccountID == d.Grantee {
			actions = append(actions, ActionCancel)
		}
	}
	return actions
}
