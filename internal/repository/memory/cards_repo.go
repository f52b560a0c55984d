package memory

import (
	"fmt"
	"sync"

	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
)

// CardsRepo is a direct-addressed map keyed by card number. Cards are never
// deleted; mutation happens in place on the returned record.
type CardsRepo struct {
	mu    sync.RWMutex
	cards map[string]*models.Card
}

func NewCardsRepo() *CardsRepo {
	return &CardsRepo{cards: make(map[string]*models.Card)}
}

func (r *CardsRepo) Save(card *models.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.cards[card.Numero]; exists {
		return fmt.Errorf("%w: tarjeta %s", repo.ErrDuplicate, card.Numero)
	}
	r.cards[card.Numero] = card
	return nil
}

func (r *CardsRepo) GetByNumero(numero string) (*models.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	card, exists := r.cards[numero]
	if !exists {
		return nil, fmt.Errorf("%w: tarjeta %s", repo.ErrNotFound, numero)
	}
	return card, nil
}
