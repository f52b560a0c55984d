package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
)

type CustomersRepo struct {
	mu        sync.RWMutex
	customers map[string]models.Customer
}

func NewCustomersRepo() *CustomersRepo {
	return &CustomersRepo{customers: make(map[string]models.Customer)}
}

func (r *CustomersRepo) Create(c models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[c.ID]; exists {
		return fmt.Errorf("%w: cliente %s", repo.ErrDuplicate, c.ID)
	}
	r.customers[c.ID] = c
	return nil
}

func (r *CustomersRepo) GetByID(id string) (models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, exists := r.customers[id]
	if !exists {
		return models.Customer{}, fmt.Errorf("%w: cliente %s", repo.ErrNotFound, id)
	}
	return c, nil
}

func (r *CustomersRepo) List() ([]models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CustomersRepo) Update(c models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[c.ID]; !exists {
		return fmt.Errorf("%w: cliente %s", repo.ErrNotFound, c.ID)
	}
	r.customers[c.ID] = c
	return nil
}

func (r *CustomersRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[id]; !exists {
		return fmt.Errorf("%w: cliente %s", repo.ErrNotFound, id)
	}
	delete(r.customers, id)
	return nil
}
