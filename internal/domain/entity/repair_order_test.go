package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/malarguetech/taller-api/internal/domain/entity"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		entity.StatusIngresado,
		entity.StatusEnRevision,
		entity.StatusPresupuestado,
		entity.StatusReparando,
		entity.StatusReparado,
		entity.StatusEntregado,
		entity.StatusCancelado,
	} {
		assert.True(t, entity.ValidStatus(s), "estado %s debe ser válido", s)
	}
	assert.False(t, entity.ValidStatus("VOLANDO"))
	assert.False(t, entity.ValidStatus("ingresado"), "los estados son sensibles a mayúsculas")
	assert.False(t, entity.ValidStatus(""))
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, entity.TerminalStatus(entity.StatusEntregado))
	assert.True(t, entity.TerminalStatus(entity.StatusCancelado))
	assert.False(t, entity.TerminalStatus(entity.StatusReparado),
		"REPARADO admite la transición a ENTREGADO")
	assert.False(t, entity.TerminalStatus(entity.StatusIngresado))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "En revisión", entity.StatusLabel(entity.StatusEnRevision))
	assert.Equal(t, "Reparado", entity.StatusLabel(entity.StatusReparado))
	// Estado desconocido: se devuelve crudo, sin inventar etiqueta
	assert.Equal(t, "OTRO", entity.StatusLabel("OTRO"))
}

func TestOrderPartSubtotal(t *testing.T) {
	item := &entity.OrderPart{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("1500.50"),
	}
	assert.True(t, decimal.RequireFromString("4501.50").Equal(item.Subtotal()))
}

func TestPartLowStock(t *testing.T) {
	p := &entity.Part{Quantity: 2, MinQuantity: 3}
	assert.True(t, p.LowStock())

	p.Quantity = 3
	assert.True(t, p.LowStock(), "en el umbral también es stock bajo")

	p.Quantity = 4
	assert.False(t, p.LowStock())
}
