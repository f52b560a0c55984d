package services

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardledger/cards-backend/internal/metrics"
	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
	"github.com/cardledger/cards-backend/internal/worker"
)

// CardService applies the card mutation rules. Every operation runs
// lookup+validate+mutate+record under mu, so the balance field never sees a
// torn read-modify-write even with concurrent requests. Preconditions are
// checked strictly in order; the first failure is the reported one.
type CardService struct {
	mu     sync.Mutex
	cards  repo.Cards
	ledger repo.Ledger
	log    repo.AuditLogs
	wp     *worker.Pool
}

func NewCardService(cards repo.Cards, ledger repo.Ledger, logs repo.AuditLogs, wp *worker.Pool) *CardService {
	return &CardService{cards: cards, ledger: ledger, log: logs, wp: wp}
}

// Saldo returns a copy of the card for a balance inquiry. Blocked cards can
// still be inspected.
func (s *CardService) Saldo(numero string) (models.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return models.Card{}, err
	}
	return *card, nil
}

// Pagar subtracts monto from the balance. There is no floor check: the
// balance may go negative (overpayment is accepted).
func (s *CardService) Pagar(numero string, monto decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return s.fail("pago", err)
	}
	if card.Bloqueada {
		return s.fail("pago", ErrCardBlocked)
	}
	if monto.Sign() <= 0 {
		return s.fail("pago", ErrInvalidAmount)
	}

	card.Saldo = card.Saldo.Sub(monto)
	s.record(numero, monto, models.KindPayment)
	s.audit(numero, "pago", map[string]any{"monto": monto.String()})
	metrics.CardOpsTotal.WithLabelValues("pago").Inc()
	return card.Saldo, nil
}

// Consumo adds monto to the balance after the limit check
// (saldo + monto must not exceed limite). A rejected charge leaves the
// balance untouched.
func (s *CardService) Consumo(numero string, monto decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return s.fail("consumo", err)
	}
	if card.Bloqueada {
		return s.fail("consumo", ErrCardBlocked)
	}
	if monto.Sign() <= 0 {
		return s.fail("consumo", ErrInvalidAmount)
	}
	if card.Saldo.Add(monto).GreaterThan(card.Limite) {
		return s.fail("consumo", ErrLimitExceeded)
	}

	card.Saldo = card.Saldo.Add(monto)
	s.record(numero, monto, models.KindCharge)
	s.audit(numero, "consumo", map[string]any{"monto": monto.String()})
	metrics.CardOpsTotal.WithLabelValues("consumo").Inc()
	return card.Saldo, nil
}

// Movimientos lists the card's entries from the bounded recent history,
// most recent first. The pending queue is not consulted.
func (s *CardService) Movimientos(numero string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.cards.GetByNumero(numero); err != nil {
		return nil, err
	}
	return s.ledger.RecentByCard(numero), nil
}

// Bloquear sets the blocked flag to the requested value. It is the one
// mutation allowed on an already-blocked card.
func (s *CardService) Bloquear(numero string, bloquear bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return false, s.failErr("bloqueo", err)
	}

	card.Bloqueada = bloquear
	tipo := models.KindBlock
	if !bloquear {
		tipo = models.KindUnblock
	}
	s.record(numero, decimal.Zero, tipo)
	s.audit(numero, "bloqueo", map[string]any{"bloqueada": bloquear})
	metrics.CardOpsTotal.WithLabelValues("bloqueo").Inc()
	return card.Bloqueada, nil
}

// CambiarPin replaces the PIN. No transaction is recorded for PIN changes.
func (s *CardService) CambiarPin(numero, pinActual, nuevoPin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return s.failErr("pin", err)
	}
	if card.Bloqueada {
		return s.failErr("pin", ErrCardBlocked)
	}
	if card.Pin != pinActual {
		return s.failErr("pin", ErrPinMismatch)
	}
	if !models.ValidPIN(nuevoPin) {
		return s.failErr("pin", ErrInvalidPin)
	}

	card.Pin = nuevoPin
	s.audit(numero, "cambio_pin", nil)
	metrics.CardOpsTotal.WithLabelValues("pin").Inc()
	return nil
}

// AumentarLimite replaces the credit limit; the new value must be strictly
// greater than the current one. No transaction is recorded.
func (s *CardService) AumentarLimite(numero string, nuevoLimite decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return s.fail("limite", err)
	}
	if card.Bloqueada {
		return s.fail("limite", ErrCardBlocked)
	}
	if nuevoLimite.LessThanOrEqual(card.Limite) {
		return s.fail("limite", ErrLimitNotHigher)
	}

	card.Limite = nuevoLimite
	s.audit(numero, "aumento_limite", map[string]any{"limite": nuevoLimite.String()})
	metrics.CardOpsTotal.WithLabelValues("limite").Inc()
	return card.Limite, nil
}

// Renovar advances the expiration date by two years.
func (s *CardService) Renovar(numero string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.cards.GetByNumero(numero)
	if err != nil {
		return time.Time{}, s.failErr("renovacion", err)
	}
	if card.Bloqueada {
		return time.Time{}, s.failErr("renovacion", ErrCardBlocked)
	}

	card.FechaVencimiento = card.FechaVencimiento.AddDate(2, 0, 0)
	s.record(numero, decimal.Zero, models.KindRenewal)
	s.audit(numero, "renovacion", map[string]any{"vence": card.FechaVencimiento.Format("2006-01-02")})
	metrics.CardOpsTotal.WithLabelValues("renovacion").Inc()
	return card.FechaVencimiento, nil
}

func (s *CardService) record(numero string, monto decimal.Decimal, tipo string) {
	s.ledger.Record(numero, monto, tipo)
	metrics.LedgerPendingDepth.Set(float64(s.ledger.PendingDepth()))
}

func (s *CardService) audit(numero, action string, details map[string]any) {
	if s.wp == nil {
		return
	}
	l := models.AuditLog{EntityType: "tarjeta", EntityID: numero, Action: action, Details: details}
	s.wp.Submit(func() { _ = s.log.Create(l) })
}

func (s *CardService) fail(op string, err error) (decimal.Decimal, error) {
	return decimal.Decimal{}, s.failErr(op, err)
}

func (s *CardService) failErr(op string, err error) error {
	metrics.CardOpsFailed.WithLabelValues(op).Inc()
	return err
}
