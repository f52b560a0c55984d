package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardledger/cards-backend/internal/models"
)

// recentCap bounds the recent history for the whole process, not per card.
const recentCap = 10

// LedgerRepo holds every recorded transaction in two structures: recent is a
// most-recent-last slice capped at recentCap (the oldest entry is dropped
// when full), pending grows without bound in insertion order.
type LedgerRepo struct {
	mu      sync.RWMutex
	recent  []models.Transaction
	pending []models.Transaction
}

func NewLedgerRepo() *LedgerRepo {
	return &LedgerRepo{recent: make([]models.Transaction, 0, recentCap)}
}

func (r *LedgerRepo) Record(tarjetaNumero string, monto decimal.Decimal, tipo string) models.Transaction {
	tx := models.Transaction{
		ID:            uuid.NewString(),
		TarjetaNumero: tarjetaNumero,
		Monto:         monto,
		Tipo:          tipo,
		Fecha:         time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.recent) >= recentCap {
		r.recent = append(r.recent[:0], r.recent[1:]...)
	}
	r.recent = append(r.recent, tx)
	r.pending = append(r.pending, tx)

	return tx
}

func (r *LedgerRepo) RecentByCard(tarjetaNumero string) []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, 0, len(r.recent))
	for i := len(r.recent) - 1; i >= 0; i-- {
		if r.recent[i].TarjetaNumero == tarjetaNumero {
			out = append(out, r.recent[i])
		}
	}
	return out
}

func (r *LedgerRepo) PendingDepth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pending)
}
