package bank

import (
	"fmt"

	"github.com/dmitrijs2005/gophatm/internal/common"
)

// DuplicateAccountError is returned by AddAccount when the account number or
// the card id is already registered. It matches common.ErrorAlreadyExists.
type DuplicateAccountError struct {
	AccountNumber string
	CardID        string
}

func (e *DuplicateAccountError) Error() string {
	if e.CardID != "" {
		return fmt.Sprintf("card %s is already linked to an account", e.CardID)
	}
	return fmt.Sprintf("account %s already exists", e.AccountNumber)
}

func (e *DuplicateAccountError) Unwrap() error { return common.ErrorAlreadyExists }
