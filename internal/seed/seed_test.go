package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardledger/cards-backend/internal/logger"
	"github.com/cardledger/cards-backend/internal/repository/memory"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	clientes := writeFile(t, dir, "clientes.json",
		`[{"id":"10","nombre":"Ana","email":"ana@banco.com","telefono":"555-0000"},
		  {"id":"10","nombre":"Duplicada"}]`)
	tarjetas := writeFile(t, dir, "tarjetas.json",
		`[{"numero":"4111","clienteId":"10","saldo":"250.50","limite":1000,"pin":"9999","bloqueada":true}]`)

	customers := memory.NewCustomersRepo()
	cards := memory.NewCardsRepo()
	Load(logger.New("test"), customers, cards, clientes, tarjetas)

	c, err := customers.GetByID("10")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Nombre, "first occurrence wins on duplicate ids")

	card, err := cards.GetByNumero("4111")
	require.NoError(t, err)
	assert.True(t, card.Saldo.Equal(decimal.RequireFromString("250.50")))
	assert.True(t, card.Limite.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "9999", card.Pin)
	assert.True(t, card.Bloqueada)

	// no demo data when both files load cleanly
	_, err = cards.GetByNumero("1234-5678-9012-3456")
	assert.Error(t, err)
}

func TestLoadMissingFilesFallsBackToDemo(t *testing.T) {
	customers := memory.NewCustomersRepo()
	cards := memory.NewCardsRepo()
	Load(logger.New("test"), customers, cards, "no/such/clientes.json", "no/such/tarjetas.json")

	c, err := customers.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Cliente Demo", c.Nombre)

	card, err := cards.GetByNumero("1234-5678-9012-3456")
	require.NoError(t, err)
	assert.True(t, card.Saldo.Equal(decimal.NewFromInt(5000)))
	assert.True(t, card.Limite.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "1234", card.Pin)
	assert.False(t, card.Bloqueada)
}

func TestLoadMalformedFileFallsBackToDemo(t *testing.T) {
	dir := t.TempDir()
	clientes := writeFile(t, dir, "clientes.json", `[{"id":"10","nombre":"Ana"}]`)
	tarjetas := writeFile(t, dir, "tarjetas.json", `{not json`)

	customers := memory.NewCustomersRepo()
	cards := memory.NewCardsRepo()
	Load(logger.New("test"), customers, cards, clientes, tarjetas)

	// the good file still loads, and the demo records fill the gap
	_, err := customers.GetByID("10")
	assert.NoError(t, err)
	_, err = customers.GetByID("1")
	assert.NoError(t, err)
	_, err = cards.GetByNumero("1234-5678-9012-3456")
	assert.NoError(t, err)
}
