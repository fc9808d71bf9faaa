package taller_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
)

func TestAddPart_CapturaPrecioVigente(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)
	order := env.seedOrder(device.ID, entity.StatusEnRevision)

	item, err := env.uc.AddPart(context.Background(), order.ID, dto.OrderItemInput{
		PartID:   part.ID,
		Quantity: 2,
	})
	require.NoError(t, err)

	assert.True(t, part.UnitPrice.Equal(item.UnitPrice), "sin precio explícito se captura el vigente")
	assert.True(t, part.UnitPrice.Mul(decimal.NewFromInt(2)).Equal(item.Subtotal))
	assert.Equal(t, part.Name, item.PartName)

	// No reserva stock
	assert.Equal(t, int64(5), env.store.parts[part.ID].Quantity)
}

func TestAddPart_PrecioExplicito(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)
	order := env.seedOrder(device.ID, entity.StatusEnRevision)

	price := decimal.RequireFromString("9990")
	item, err := env.uc.AddPart(context.Background(), order.ID, dto.OrderItemInput{
		PartID:    part.ID,
		Quantity:  1,
		UnitPrice: &price,
	})
	require.NoError(t, err)
	assert.True(t, price.Equal(item.UnitPrice))
}

func TestAddPart_Validaciones(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 1)
	order := env.seedOrder(device.ID, entity.StatusEnRevision)
	ctx := context.Background()

	_, err := env.uc.AddPart(ctx, order.ID, dto.OrderItemInput{PartID: part.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.AddPart(ctx, order.ID, dto.OrderItemInput{PartID: part.ID, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = env.uc.AddPart(ctx, order.ID, dto.OrderItemInput{PartID: uuid.New().String(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.uc.AddPart(ctx, uuid.New().String(), dto.OrderItemInput{PartID: part.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemovePart_QuitaLaLinea(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)
	it := line(part.ID, 1, "42000")
	order := env.seedOrder(device.ID, entity.StatusEnRevision, it)

	err := env.uc.RemovePart(context.Background(), order.ID, it.ID)
	require.NoError(t, err)
	assert.Empty(t, env.store.items)
}

func TestRemovePart_LineaDeOtraOrden(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)
	it := line(part.ID, 1, "42000")
	env.seedOrder(device.ID, entity.StatusEnRevision, it)
	other := env.seedOrder(device.ID, entity.StatusIngresado)

	err := env.uc.RemovePart(context.Background(), other.ID, it.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, env.store.items, 1, "la línea de la otra orden no se toca")
}
