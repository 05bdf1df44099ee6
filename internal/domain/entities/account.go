package entities

// AccountRole distinguishes the virtual administrator from owner accounts.
//
// The admin observes every record but never transacts: any mutating engine
// call authored by an admin account is rejected.

type AccountRole string

const (
	AccountRoleAdmin AccountRole = "admin"
	AccountRoleUser  AccountRole = "user"
)

// Account is an entry in the account registry.
//
// The registry is read-only to the transaction engine except for Balance,
// which moves when a sale escrows, refunds, or settles funds.

type Account struct {
	AccountID string      `json:"account_id"`
	UserName  string      `json:"user_name"`
	Role      AccountRole `json:"role"`
	Balance   float64     `json:"balance"`
}

func (a Account) IsAdmin() bool {
	return a.Role == AccountRoleAdmin
}
