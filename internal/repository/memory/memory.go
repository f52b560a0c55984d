package memory

import (
	repo "github.com/cardledger/cards-backend/internal/repository"
)

var (
	_ repo.Customers = (*CustomersRepo)(nil)
	_ repo.Cards     = (*CardsRepo)(nil)
	_ repo.Ledger    = (*LedgerRepo)(nil)
	_ repo.AuditLogs = (*AuditLogsRepo)(nil)
)

type Repositories struct {
	Customers repo.Customers
	Cards     repo.Cards
	Ledger    repo.Ledger
	AuditLogs repo.AuditLogs
}

func NewRepositories() Repositories {
	return Repositories{
		Customers: NewCustomersRepo(),
		Cards:     NewCardsRepo(),
		Ledger:    NewLedgerRepo(),
		AuditLogs: NewAuditLogsRepo(),
	}
}
