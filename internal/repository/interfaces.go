package repository

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/cardledger/cards-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate entry")
)

type Customers interface {
	Create(c models.Customer) error
	GetByID(id string) (models.Customer, error)
	List() ([]models.Customer, error)
	Update(c models.Customer) error
	Delete(id string) error
}

type Cards interface {
	Save(card *models.Card) error
	// GetByNumero returns the live card record; callers mutate it in place
	// under their own operation lock.
	GetByNumero(numero string) (*models.Card, error)
}

// Ledger appends every card mutation to two structures at once: a recent
// history capped at 10 entries (oldest evicted first) and an unbounded
// pending queue that is never drained here.
type Ledger interface {
	Record(tarjetaNumero string, monto decimal.Decimal, tipo string) models.Transaction
	RecentByCard(tarjetaNumero string) []models.Transaction
	PendingDepth() int
}

type AuditLogs interface {
	Create(l models.AuditLog) error
}
