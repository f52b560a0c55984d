package models

import (
	"errors"
	"strings"
)

type Customer struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("id requerido")
	}
	if strings.TrimSpace(c.Nombre) == "" {
		return errors.New("nombre requerido")
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return errors.New("email inválido")
	}
	return nil
}
