package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("id", "1"))
	assert.NotNil(t, Required("id", ""))
	assert.NotNil(t, Required("id", "   "))
}

func TestCollect(t *testing.T) {
	assert.Empty(t, Collect(nil, nil))

	errs := Collect(Required("id", ""), nil, Required("nombre", ""))
	assert.Len(t, errs, 2)
	assert.Equal(t, "id: required; nombre: required", errs.Error())
}
