// Package bank defines the capability boundary toward a real banking
// backend. The chat layer depends on AccountService abstractly so the mock
// below can be swapped for a live integration without touching response
// generation.
package bank

import "errors"

// ErrTransferUnsupported is returned when a backend refuses to move money
// through the chat channel.
var ErrTransferUnsupported = errors.New("transfers are not available through chat")

// Transaction is a single statement line.
type Transaction struct {
	Date        string
	Description string
	Amount      string
}

// AccountService supplies account data for authenticated sessions.
type AccountService interface {
	// Balance returns the display form of the user's current balance.
	Balance(userID string) string
	// RecentTransactions returns the most recent statement lines, newest first.
	RecentTransactions(userID string) []Transaction
	// InitiateTransfer starts a transfer of amount to toAccount.
	InitiateTransfer(userID, toAccount, amount string) error
}

// MockService returns fixed demo data in place of a live core-banking API.
// It is the default backend for the bot and for tests.
type MockService struct{}

// NewMockService constructs the demo backend.
func NewMockService() *MockService { return &MockService{} }

// Balance always reports the same demo balance.
func (MockService) Balance(string) string { return "$2,547.83" }

// RecentTransactions returns a fixed three-line demo statement.
func (MockService) RecentTransactions(string) []Transaction {
	return []Transaction{
		{Date: "Dec 15", Description: "Grocery Store", Amount: "$85.42"},
		{Date: "Dec 14", Description: "Online Transfer", Amount: "$200.00"},
		{Date: "Dec 13", Description: "ATM Withdrawal", Amount: "$60.00"},
	}
}

// InitiateTransfer always refuses; transfers stay on the secure channels.
func (MockService) InitiateTransfer(string, string, string) error {
	return ErrTransferUnsupported
}
