package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cardledger/cards-backend/internal/api/httpx"
	"github.com/cardledger/cards-backend/internal/api/validate"
	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
	"github.com/cardledger/cards-backend/internal/services"
)

type CustomerHandler struct {
	svc *services.CustomerService
}

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.List()
	if err != nil {
		writeCustomerError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeCustomerError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	if errs := validate.Collect(
		validate.Required("id", c.ID),
		validate.Required("nombre", c.Nombre),
	); len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", errs.Error(), errs)
		return
	}
	created, err := h.svc.Create(c)
	if err != nil {
		writeCustomerError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "cuerpo inválido", nil)
		return
	}
	updated, err := h.svc.Update(chi.URLParam(r, "id"), c)
	if err != nil {
		writeCustomerError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		writeCustomerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCustomerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "cliente no encontrado", nil)
	case errors.Is(err, repo.ErrDuplicate):
		httpx.WriteError(w, http.StatusConflict, "duplicate", "el cliente ya existe", nil)
	case errors.Is(err, services.ErrIDMismatch):
		httpx.WriteError(w, http.StatusBadRequest, "id_mismatch", err.Error(), nil)
	default:
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", err.Error(), nil)
	}
}
