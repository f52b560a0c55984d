package services

import (
	"strings"

	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
)

type CustomerService struct {
	r repo.Customers
}

func NewCustomerService(r repo.Customers) *CustomerService { return &CustomerService{r: r} }

func (s *CustomerService) List() ([]models.Customer, error) { return s.r.List() }

func (s *CustomerService) Get(id string) (models.Customer, error) { return s.r.GetByID(id) }

func (s *CustomerService) Create(c models.Customer) (models.Customer, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Nombre = strings.TrimSpace(c.Nombre)
	if err := c.Validate(); err != nil {
		return models.Customer{}, err
	}
	if err := s.r.Create(c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

// Update replaces the record at id. The identifier is immutable, so a body
// carrying a different id is rejected before the store is consulted.
func (s *CustomerService) Update(id string, c models.Customer) (models.Customer, error) {
	if c.ID != id {
		return models.Customer{}, ErrIDMismatch
	}
	if err := c.Validate(); err != nil {
		return models.Customer{}, err
	}
	if err := s.r.Update(c); err != nil {
		return models.Customer{}, err
	}
	return c, nil
}

func (s *CustomerService) Delete(id string) error { return s.r.Delete(id) }
