package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/cardledger/cards-backend/internal/api/httpx"
	repo "github.com/cardledger/cards-backend/internal/repository"
	"github.com/cardledger/cards-backend/internal/services"
)

type CardHandler struct {
	svc *services.CardService
}

func NewCardHandler(svc *services.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

type pagoRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

type consumoRequest struct {
	Monto decimal.Decimal `json:"monto"`
}

type bloqueoRequest struct {
	Bloquear bool `json:"bloquear"`
}

type cambioPinRequest struct {
	PinActual string `json:"pinActual"`
	NuevoPin  string `json:"nuevoPin"`
}

type aumentoLimiteRequest struct {
	NuevoLimite decimal.Decimal `json:"nuevoLimite"`
}

type saldoResponse struct {
	Saldo         decimal.Decimal `json:"saldo"`
	Limite        decimal.Decimal `json:"limite"`
	FechaConsulta time.Time       `json:"fechaConsulta"`
}

type pagoResponse struct {
	NuevoSaldo decimal.Decimal `json:"nuevoSaldo"`
	Mensaje    string          `json:"mensaje"`
}

func (h *CardHandler) Saldo(w http.ResponseWriter, r *http.Request) {
	card, err := h.svc.Saldo(chi.URLParam(r, "numero"))
	if err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, saldoResponse{
		Saldo:         card.Saldo,
		Limite:        card.Limite,
		FechaConsulta: time.Now(),
	})
}

func (h *CardHandler) Pagar(w http.ResponseWriter, r *http.Request) {
	var req pagoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	saldo, err := h.svc.Pagar(chi.URLParam(r, "numero"), req.Monto)
	if err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pagoResponse{
		NuevoSaldo: saldo,
		Mensaje:    "Pago realizado exitosamente",
	})
}

func (h *CardHandler) Movimientos(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.Movimientos(chi.URLParam(r, "numero"))
	if err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, txs)
}

func (h *CardHandler) Bloquear(w http.ResponseWriter, r *http.Request) {
	var req bloqueoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	bloqueada, err := h.svc.Bloquear(chi.URLParam(r, "numero"), req.Bloquear)
	if err != nil {
		writeCardError(w, err)
		return
	}
	mensaje := "Tarjeta desbloqueada correctamente"
	if bloqueada {
		mensaje = "Tarjeta bloqueada correctamente"
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje":   mensaje,
		"bloqueada": bloqueada,
	})
}

func (h *CardHandler) CambiarPin(w http.ResponseWriter, r *http.Request) {
	var req cambioPinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	if err := h.svc.CambiarPin(chi.URLParam(r, "numero"), req.PinActual, req.NuevoPin); err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"mensaje": "PIN actualizado correctamente"})
}

func (h *CardHandler) Renovar(w http.ResponseWriter, r *http.Request) {
	vence, err := h.svc.Renovar(chi.URLParam(r, "numero"))
	if err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje":    "Tarjeta renovada",
		"nuevaFecha": vence.Format("2006-01-02"),
	})
}

func (h *CardHandler) AumentarLimite(w http.ResponseWriter, r *http.Request) {
	var req aumentoLimiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	limite, err := h.svc.AumentarLimite(chi.URLParam(r, "numero"), req.NuevoLimite)
	if err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje":     "Límite actualizado",
		"nuevoLimite": limite,
	})
}

func (h *CardHandler) Consumo(w http.ResponseWriter, r *http.Request) {
	var req consumoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	saldo, err := h.svc.Consumo(chi.URLParam(r, "numero"), req.Monto)
	if err != nil {
		writeCardError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje":    "Consumo registrado",
		"nuevoSaldo": saldo,
	})
}

func writeCardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "tarjeta no encontrada", nil)
	case errors.Is(err, services.ErrCardBlocked):
		httpx.WriteError(w, http.StatusBadRequest, "card_blocked", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidAmount):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_amount", err.Error(), nil)
	case errors.Is(err, services.ErrLimitExceeded):
		httpx.WriteError(w, http.StatusBadRequest, "limit_exceeded", err.Error(), nil)
	case errors.Is(err, services.ErrPinMismatch):
		httpx.WriteError(w, http.StatusBadRequest, "pin_mismatch", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidPin):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_pin", err.Error(), nil)
	case errors.Is(err, services.ErrLimitNotHigher):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_limit", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
