// Package seed loads the optional startup datasets. The files are read once;
// nothing is ever written back, so all mutations die with the process.
package seed

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
)

// cardRecord mirrors models.Card but exposes the PIN, which the domain model
// keeps out of JSON.
type cardRecord struct {
	Numero           string          `json:"numero"`
	ClienteID        string          `json:"clienteId"`
	Saldo            decimal.Decimal `json:"saldo"`
	Limite           decimal.Decimal `json:"limite"`
	Pin              string          `json:"pin"`
	Bloqueada        bool            `json:"bloqueada"`
	FechaVencimiento time.Time       `json:"fechaVencimiento"`
}

// Load populates the stores from the two JSON files. A missing or malformed
// file is not fatal: the error is logged and the demo dataset is inserted
// instead. Duplicate identifiers within a file keep the first occurrence.
func Load(log *slog.Logger, customers repo.Customers, cards repo.Cards, clientesPath, tarjetasPath string) {
	errClientes := loadCustomers(customers, clientesPath)
	errTarjetas := loadCards(cards, tarjetasPath)

	if errClientes != nil || errTarjetas != nil {
		if errClientes != nil {
			log.Warn("seed clientes failed, using demo data", "path", clientesPath, "err", errClientes)
		}
		if errTarjetas != nil {
			log.Warn("seed tarjetas failed, using demo data", "path", tarjetasPath, "err", errTarjetas)
		}
		loadDemo(customers, cards)
	}
}

func loadCustomers(customers repo.Customers, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var list []models.Customer
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}
	for _, c := range list {
		_ = customers.Create(c) // first occurrence wins
	}
	return nil
}

func loadCards(cards repo.Cards, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var list []cardRecord
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}
	for _, rec := range list {
		card := models.Card{
			Numero:           rec.Numero,
			ClienteID:        rec.ClienteID,
			Saldo:            rec.Saldo,
			Limite:           rec.Limite,
			Pin:              rec.Pin,
			Bloqueada:        rec.Bloqueada,
			FechaVencimiento: rec.FechaVencimiento,
		}
		_ = cards.Save(&card)
	}
	return nil
}

func loadDemo(customers repo.Customers, cards repo.Cards) {
	_ = customers.Create(models.Customer{
		ID:       "1",
		Nombre:   "Cliente Demo",
		Email:    "demo@banco.com",
		Telefono: "555-1234",
	})
	_ = cards.Save(&models.Card{
		Numero:           "1234-5678-9012-3456",
		ClienteID:        "1",
		Saldo:            decimal.NewFromInt(5000),
		Limite:           decimal.NewFromInt(10000),
		Pin:              "1234",
		Bloqueada:        false,
		FechaVencimiento: time.Now().AddDate(3, 0, 0),
	})
}
