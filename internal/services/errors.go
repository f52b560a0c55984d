package services

import "errors"

// Business rule failures. Handlers map these onto HTTP statuses; the order in
// which card operations check them is fixed (see CardService).
var (
	ErrCardBlocked    = errors.New("tarjeta bloqueada")
	ErrInvalidAmount  = errors.New("el monto debe ser positivo")
	ErrLimitExceeded  = errors.New("límite de crédito excedido")
	ErrPinMismatch    = errors.New("PIN actual incorrecto")
	ErrInvalidPin     = errors.New("el nuevo PIN debe ser 4 dígitos numéricos")
	ErrLimitNotHigher = errors.New("el nuevo límite debe ser mayor al actual")
	ErrIDMismatch     = errors.New("el id de la ruta no coincide con el del cuerpo")
)
