// Package domain provides defenitions of all entities.
package domain

import "errors"

// Error strings double as wire-level error bodies, hence the capitalization.
var (
	// ErrCustomerAlreadyExists indicates that an account with the given taxpayer id already exists.
	ErrCustomerAlreadyExists = errors.New("Customer already exists")
	// ErrCustomerNotFound indicates that no account matches the given taxpayer id.
	ErrCustomerNotFound = errors.New("Customer not found")
)

// Account holds a customer's ledger keyed by taxpayer id.
type Account struct {
	ID        string        `json:"id"`
	TaxID     string        `json:"taxId"`
	Name      string        `json:"name"`
	Statement []Transaction `json:"statement"`
}
