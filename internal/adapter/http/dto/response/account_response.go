package response

import "github.com/rahulchavan424/real-estate-hyperledger/internal/domain/entities"

type AccountResponse struct {
	AccountID string  `json:"account_id"`
	UserName  string  `json:"user_name"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		UserName:  a.UserName,
		Role:      string(a.Role),
		Balance:   a.Balance,
	}
}

func FromAccountList(list []entities.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAccount(a))
	}
	return out
}
