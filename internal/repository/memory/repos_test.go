package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardledger/cards-backend/internal/models"
	repo "github.com/cardledger/cards-backend/internal/repository"
)

func TestCustomersRepoCreateAndDuplicate(t *testing.T) {
	r := NewCustomersRepo()

	c := models.Customer{ID: "7", Nombre: "Ana", Email: "ana@banco.com"}
	require.NoError(t, r.Create(c))

	err := r.Create(models.Customer{ID: "7", Nombre: "Otro"})
	assert.ErrorIs(t, err, repo.ErrDuplicate)

	// the original record survives the failed creation
	got, err := r.GetByID("7")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nombre)
}

func TestCustomersRepoUpdateDelete(t *testing.T) {
	r := NewCustomersRepo()

	assert.ErrorIs(t, r.Update(models.Customer{ID: "x"}), repo.ErrNotFound)
	assert.ErrorIs(t, r.Delete("x"), repo.ErrNotFound)

	require.NoError(t, r.Create(models.Customer{ID: "1", Nombre: "Demo"}))
	require.NoError(t, r.Update(models.Customer{ID: "1", Nombre: "Demo 2"}))

	got, err := r.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Demo 2", got.Nombre)

	require.NoError(t, r.Delete("1"))
	_, err = r.GetByID("1")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCustomersRepoList(t *testing.T) {
	r := NewCustomersRepo()
	require.NoError(t, r.Create(models.Customer{ID: "b"}))
	require.NoError(t, r.Create(models.Customer{ID: "a"}))

	list, err := r.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
}

func TestCardsRepoSaveAndLookup(t *testing.T) {
	r := NewCardsRepo()

	card := &models.Card{Numero: "1111", Saldo: decimal.NewFromInt(50)}
	require.NoError(t, r.Save(card))
	assert.ErrorIs(t, r.Save(&models.Card{Numero: "1111"}), repo.ErrDuplicate)

	got, err := r.GetByNumero("1111")
	require.NoError(t, err)
	assert.Same(t, card, got) // live record, mutated in place by callers

	_, err = r.GetByNumero("2222")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
