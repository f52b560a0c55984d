package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	KindPayment = "Payment"
	KindCharge  = "Charge"
	KindBlock   = "Block"
	KindUnblock = "Unblock"
	KindRenewal = "Renewal"
)

// Transaction is immutable once created.
type Transaction struct {
	ID            string          `json:"id"`
	TarjetaNumero string          `json:"tarjetaNumero"`
	Monto         decimal.Decimal `json:"monto"`
	Tipo          string          `json:"tipo"`
	Fecha         time.Time       `json:"fecha"`
}
