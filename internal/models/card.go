package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Card is a credit-card account keyed by its number. ClienteID is a free
// reference; nothing checks that the customer actually exists.
type Card struct {
	Numero           string          `json:"numero"`
	ClienteID        string          `json:"clienteId"`
	Saldo            decimal.Decimal `json:"saldo"`
	Limite           decimal.Decimal `json:"limite"`
	Pin              string          `json:"-"`
	Bloqueada        bool            `json:"bloqueada"`
	FechaVencimiento time.Time       `json:"fechaVencimiento"`
}

// ValidPIN reports whether pin is exactly four numeric digits.
func ValidPIN(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
