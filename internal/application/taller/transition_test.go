package taller_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malarguetech/taller-api/internal/application/dto"
	"github.com/malarguetech/taller-api/internal/application/inventory"
	"github.com/malarguetech/taller-api/internal/application/taller"
	"github.com/malarguetech/taller-api/internal/domain"
	"github.com/malarguetech/taller-api/internal/domain/entity"
	"github.com/malarguetech/taller-api/internal/domain/repository"
	"github.com/malarguetech/taller-api/pkg/config"
	"github.com/malarguetech/taller-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria del flujo de órdenes
// ──────────────────────────────────────────────────────────────────────────────

// memStore agrupa todo el estado compartido por los repos fake. El fake de
// TxRunner toma un snapshot completo antes de fn y lo restaura si fn falla,
// reproduciendo la semántica de rollback.
type memStore struct {
	orders    map[string]*entity.RepairOrder
	items     map[string]*entity.OrderPart
	parts     map[string]*entity.Part
	movements []*entity.StockMovement
	customers map[string]*entity.Customer
	devices   map[string]*entity.Device
}

func newMemStore() *memStore {
	return &memStore{
		orders:    make(map[string]*entity.RepairOrder),
		items:     make(map[string]*entity.OrderPart),
		parts:     make(map[string]*entity.Part),
		customers: make(map[string]*entity.Customer),
		devices:   make(map[string]*entity.Device),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.orders {
		o := *v
		cp.orders[k] = &o
	}
	for k, v := range s.items {
		it := *v
		cp.items[k] = &it
	}
	for k, v := range s.parts {
		p := *v
		cp.parts[k] = &p
	}
	cp.movements = append(cp.movements, s.movements...)
	cp.customers = s.customers
	cp.devices = s.devices
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.orders = snap.orders
	s.items = snap.items
	s.parts = snap.parts
	s.movements = snap.movements
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(o *entity.RepairOrder) error {
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.RepairOrder, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) GetByToken(token string) (*entity.RepairOrder, error) {
	for _, o := range r.s.orders {
		if o.TrackingToken == token {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) GetForUpdate(id string) (*entity.RepairOrder, error) {
	return r.GetByID(id)
}

func (r *memOrderRepo) List(limit, offset int) ([]*entity.RepairOrder, error) {
	var out []*entity.RepairOrder
	for _, o := range r.s.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memOrderRepo) Update(o *entity.RepairOrder) error {
	if _, ok := r.s.orders[o.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *o
	r.s.orders[o.ID] = &cp
	return nil
}

func (r *memOrderRepo) SetStockDeducted(id string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.StockDeducted = true
	return nil
}

func (r *memOrderRepo) Delete(id string) error {
	if _, ok := r.s.orders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.orders, id)
	for k, it := range r.s.items {
		if it.OrderID == id {
			delete(r.s.items, k)
		}
	}
	return nil
}

func (r *memOrderRepo) CountByStatus() ([]repository.StatusCount, error) {
	counts := make(map[string]int64)
	for _, o := range r.s.orders {
		counts[o.Status]++
	}
	var out []repository.StatusCount
	for status, total := range counts {
		out = append(out, repository.StatusCount{Status: status, Total: total})
	}
	return out, nil
}

func (r *memOrderRepo) SumEstimatedByStatus(statuses []string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, o := range r.s.orders {
		for _, st := range statuses {
			if o.Status == st {
				sum = sum.Add(o.EstimatedPrice)
			}
		}
	}
	return sum, nil
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(it *entity.OrderPart) error {
	cp := *it
	r.s.items[it.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.OrderPart, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) ListByOrder(orderID string) ([]*entity.OrderPart, error) {
	var out []*entity.OrderPart
	for _, it := range r.s.items {
		if it.OrderID == orderID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) Delete(id string) error {
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

type memPartRepo struct{ s *memStore }

func (r *memPartRepo) Create(p *entity.Part) error {
	cp := *p
	r.s.parts[p.ID] = &cp
	return nil
}

func (r *memPartRepo) GetByID(id string) (*entity.Part, error) {
	p, ok := r.s.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memPartRepo) GetBySKU(sku string) (*entity.Part, error) {
	for _, p := range r.s.parts {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memPartRepo) GetForUpdate(id string) (*entity.Part, error) {
	return r.GetByID(id)
}

func (r *memPartRepo) Update(p *entity.Part) error {
	cp := *p
	r.s.parts[p.ID] = &cp
	return nil
}

func (r *memPartRepo) UpdateQuantity(id string, quantity int64) error {
	p, ok := r.s.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *memPartRepo) List(onlyActive bool, limit, offset int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.s.parts {
		if onlyActive && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memPartRepo) ListLowStock(limit int) ([]*entity.Part, error) {
	var out []*entity.Part
	for _, p := range r.s.parts {
		if p.Active && p.LowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memPartRepo) Delete(id string) error {
	delete(r.s.parts, id)
	return nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByPart(partID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.PartID == partID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.s.movements, nil
}

type memDeviceRepo struct{ s *memStore }

func (r *memDeviceRepo) Create(d *entity.Device) error {
	cp := *d
	r.s.devices[d.ID] = &cp
	return nil
}

func (r *memDeviceRepo) GetByID(id string) (*entity.Device, error) {
	d, ok := r.s.devices[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *memDeviceRepo) List(limit, offset int) ([]*entity.Device, error)  { return nil, nil }
func (r *memDeviceRepo) ListByCustomer(id string) ([]*entity.Device, error) { return nil, nil }
func (r *memDeviceRepo) Update(d *entity.Device) error                      { return nil }
func (r *memDeviceRepo) Delete(id string) error                             { return nil }

type memCustomerRepo struct{ s *memStore }

func (r *memCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.s.customers[c.ID] = &cp
	return nil
}

func (r *memCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *memCustomerRepo) Update(c *entity.Customer) error                    { return nil }
func (r *memCustomerRepo) Delete(id string) error                             { return nil }

// memTxRunner reproduce el contrato transaccional de RunOrder: si fn falla,
// todo el estado vuelve al snapshot previo.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) RunOrder(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	itemRepo repository.OrderPartRepository,
	partRepo repository.PartRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snap := tx.s.snapshot()
	err := fn(&memOrderRepo{s: tx.s}, &memItemRepo{s: tx.s}, &memPartRepo{s: tx.s}, &memMovementRepo{s: tx.s})
	if err != nil {
		tx.s.restore(snap)
		return err
	}
	return nil
}

// fakeNotifier registra cada notificación entregada; con fail en true simula
// un transporte caído.
type fakeNotifier struct {
	sent []taller.StatusNotification
	fail bool
}

func (n *fakeNotifier) StatusChanged(ctx context.Context, msg taller.StatusNotification) error {
	if n.fail {
		return errors.New("smtp: connection refused")
	}
	n.sent = append(n.sent, msg)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del entorno de prueba
// ──────────────────────────────────────────────────────────────────────────────

type orderEnv struct {
	uc       *taller.OrderUseCase
	store    *memStore
	notifier *fakeNotifier
}

func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()
	store := newMemStore()
	notifier := &fakeNotifier{}
	uc := taller.NewOrderUseCase(
		&memTxRunner{s: store},
		&memOrderRepo{s: store},
		&memItemRepo{s: store},
		&memPartRepo{s: store},
		&memDeviceRepo{s: store},
		&memCustomerRepo{s: store},
		inventory.NewStockLedger(nil),
		notifier,
		config.SiteConfig{BaseURL: "http://taller.test"},
		logger.New(logger.Config{Env: "production", Level: "error"}),
	)
	return &orderEnv{uc: uc, store: store, notifier: notifier}
}

func (e *orderEnv) seedCustomer(email string) *entity.Customer {
	c := &entity.Customer{ID: uuid.New().String(), Name: "Carlos Giménez", Phone: "2604000000", Email: email}
	e.store.customers[c.ID] = c
	return c
}

func (e *orderEnv) seedDevice(customerID string) *entity.Device {
	d := &entity.Device{ID: uuid.New().String(), CustomerID: customerID, Type: "Notebook", Brand: "Lenovo", Model: "ThinkPad T480"}
	e.store.devices[d.ID] = d
	return d
}

func (e *orderEnv) seedPart(sku string, qty int64) *entity.Part {
	p := &entity.Part{
		ID:        uuid.New().String(),
		SKU:       sku,
		Name:      "Repuesto " + sku,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString("15000"),
		Active:    true,
	}
	e.store.parts[p.ID] = p
	return p
}

func (e *orderEnv) seedOrder(deviceID, status string, items ...*entity.OrderPart) *entity.RepairOrder {
	o := &entity.RepairOrder{
		ID:              uuid.New().String(),
		DeviceID:        deviceID,
		ReportedProblem: "No enciende",
		Status:          status,
		TrackingToken:   uuid.New().String(),
	}
	e.store.orders[o.ID] = o
	for _, it := range items {
		it.OrderID = o.ID
		e.store.items[it.ID] = it
	}
	return o
}

func line(partID string, qty int64, price string) *entity.OrderPart {
	return &entity.OrderPart{
		ID:        uuid.New().String(),
		PartID:    partID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transición a REPARADO: descuento atómico de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeStatus_ReparadoDescuentaStock(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	ssd := env.seedPart("SSD-240", 5)
	ram := env.seedPart("RAM-8GB", 3)
	order := env.seedOrder(device.ID, entity.StatusReparando,
		line(ssd.ID, 1, "42000"),
		line(ram.ID, 2, "30000"),
	)

	res, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{
		Status: entity.StatusReparado,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusReparando, res.PreviousStatus)
	assert.True(t, res.StatusChanged)
	assert.True(t, res.StockDeducted, "esta transición descontó stock")
	assert.True(t, res.Order.StockDeducted)

	assert.Equal(t, int64(4), env.store.parts[ssd.ID].Quantity)
	assert.Equal(t, int64(1), env.store.parts[ram.ID].Quantity)

	require.Len(t, env.store.movements, 2, "un movimiento SALIDA por línea")
	reason := fmt.Sprintf("Orden de reparación #%s", order.ID)
	for _, mov := range env.store.movements {
		assert.Equal(t, entity.MovementSalida, mov.Type)
		assert.Equal(t, reason, mov.Reason)
	}

	require.Len(t, env.notifier.sent, 1)
	msg := env.notifier.sent[0]
	assert.Equal(t, "cliente@example.com", msg.RecipientEmail)
	assert.Equal(t, "Reparado", msg.StatusLabel)
	assert.Equal(t, "http://taller.test/seguimiento/"+order.TrackingToken, msg.TrackingURL)
}

func TestChangeStatus_ReparadoIdempotente(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)
	order := env.seedOrder(device.ID, entity.StatusReparando, line(part.ID, 2, "42000"))

	_, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{Status: entity.StatusReparado})
	require.NoError(t, err)
	require.Equal(t, int64(3), env.store.parts[part.ID].Quantity)

	// Re-guardar en REPARADO no vuelve a descontar
	res, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{Status: entity.StatusReparado})
	require.NoError(t, err)

	assert.False(t, res.StockDeducted, "el descuento ya ocurrió")
	assert.False(t, res.StatusChanged)
	assert.Equal(t, int64(3), env.store.parts[part.ID].Quantity)
	assert.Len(t, env.store.movements, 1)
	assert.Len(t, env.notifier.sent, 1, "sin cambio de estado no hay notificación nueva")
}

func TestChangeStatus_StockInsuficienteRevierteTodo(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	ok := env.seedPart("SSD-240", 5)
	scarce := env.seedPart("RAM-8GB", 1)
	order := env.seedOrder(device.ID, entity.StatusReparando,
		line(ok.ID, 1, "42000"),
		line(scarce.ID, 2, "30000"),
	)

	_, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{Status: entity.StatusReparado})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Rollback completo: estado, flag, cantidades y movimientos intactos
	stored := env.store.orders[order.ID]
	assert.Equal(t, entity.StatusReparando, stored.Status)
	assert.False(t, stored.StockDeducted)
	assert.Equal(t, int64(5), env.store.parts[ok.ID].Quantity)
	assert.Equal(t, int64(1), env.store.parts[scarce.ID].Quantity)
	assert.Empty(t, env.store.movements)
	assert.Empty(t, env.notifier.sent)
}

// ──────────────────────────────────────────────────────────────────────────────
// Estados terminales y validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeStatus_EstadoTerminalBloqueaTransicion(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)

	for _, terminal := range []string{entity.StatusEntregado, entity.StatusCancelado} {
		order := env.seedOrder(device.ID, terminal)
		_, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{Status: entity.StatusReparando})
		assert.ErrorIs(t, err, domain.ErrConflict, "desde %s no se transiciona", terminal)
		assert.Equal(t, terminal, env.store.orders[order.ID].Status)
	}
}

func TestChangeStatus_EstadoTerminalPermiteEditarCampos(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	order := env.seedOrder(device.ID, entity.StatusEntregado)

	diag := "Se cambió el disco"
	res, err := env.uc.UpdateOrder(context.Background(), order.ID, dto.UpdateOrderRequest{Diagnosis: &diag})
	require.NoError(t, err, "editar sin cambiar estado está permitido en terminal")
	assert.False(t, res.StatusChanged)
	assert.Equal(t, diag, env.store.orders[order.ID].Diagnosis)
}

func TestChangeStatus_EstadoInvalido(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.uc.ChangeStatus(context.Background(), "cualquiera", dto.ChangeStatusRequest{Status: "VOLANDO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangeStatus_OrdenInexistente(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.uc.ChangeStatus(context.Background(), uuid.New().String(), dto.ChangeStatusRequest{Status: entity.StatusReparando})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificaciones best-effort
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeStatus_FalloDeNotificacionNoRevierte(t *testing.T) {
	env := newOrderEnv(t)
	env.notifier.fail = true
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	order := env.seedOrder(device.ID, entity.StatusIngresado)

	res, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{Status: entity.StatusEnRevision})
	require.NoError(t, err, "el fallo del transporte no afecta la transición")

	assert.True(t, res.StatusChanged)
	assert.False(t, res.NotificationSent)
	assert.Equal(t, entity.StatusEnRevision, env.store.orders[order.ID].Status)
}

func TestChangeStatus_ClienteSinEmailNoNotifica(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	order := env.seedOrder(device.ID, entity.StatusIngresado)

	res, err := env.uc.ChangeStatus(context.Background(), order.ID, dto.ChangeStatusRequest{Status: entity.StatusEnRevision})
	require.NoError(t, err)

	assert.False(t, res.NotificationSent)
	assert.Empty(t, env.notifier.sent)
}

func TestUpdateOrder_SinCambioDeEstadoNoNotifica(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	order := env.seedOrder(device.ID, entity.StatusEnRevision)

	diag := "Fuente quemada"
	price := decimal.RequireFromString("82000")
	res, err := env.uc.UpdateOrder(context.Background(), order.ID, dto.UpdateOrderRequest{
		Diagnosis:      &diag,
		EstimatedPrice: &price,
	})
	require.NoError(t, err)

	assert.False(t, res.StatusChanged)
	assert.Empty(t, env.notifier.sent)
	assert.Equal(t, diag, env.store.orders[order.ID].Diagnosis)
	assert.True(t, price.Equal(env.store.orders[order.ID].EstimatedPrice))
}

func TestUpdateOrder_ConEstadoEsTransicion(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 2)
	order := env.seedOrder(device.ID, entity.StatusReparando, line(part.ID, 1, "42000"))

	status := entity.StatusReparado
	res, err := env.uc.UpdateOrder(context.Background(), order.ID, dto.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)

	assert.True(t, res.StockDeducted, "editar con cambio de estado pasa por el mismo manejador")
	assert.Equal(t, int64(1), env.store.parts[part.ID].Quantity)
	assert.Len(t, env.notifier.sent, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de órdenes
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateOrder_IngresadoConToken(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)

	resp, err := env.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		DeviceID:        device.ID,
		ReportedProblem: "Pantalla rota",
		Items:           []dto.OrderItemInput{{PartID: part.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusIngresado, resp.Status)
	assert.False(t, resp.StockDeducted)
	assert.Contains(t, resp.TrackingURL, "http://taller.test/seguimiento/")

	stored := env.store.orders[resp.ID]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.TrackingToken)

	// El alta no reserva stock; la línea captura el precio vigente del repuesto
	assert.Equal(t, int64(5), env.store.parts[part.ID].Quantity)
	require.Len(t, resp.Items, 1)
	assert.True(t, part.UnitPrice.Equal(resp.Items[0].UnitPrice))
}

func TestCreateOrder_ValidacionBlandaDeStock(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 1)

	_, err := env.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		DeviceID:        device.ID,
		ReportedProblem: "Pantalla rota",
		Items:           []dto.OrderItemInput{{PartID: part.ID, Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, env.store.orders, "no queda orden a medio crear")
}

func TestCreateOrder_EquipoInexistente(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		DeviceID:        uuid.New().String(),
		ReportedProblem: "No enciende",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Seguimiento público por token
// ──────────────────────────────────────────────────────────────────────────────

func TestTrack_DevuelveVistaPublica(t *testing.T) {
	env := newOrderEnv(t)
	customer := env.seedCustomer("cliente@example.com")
	device := env.seedDevice(customer.ID)
	part := env.seedPart("SSD-240", 5)
	order := env.seedOrder(device.ID, entity.StatusPresupuestado, line(part.ID, 1, "42000"))

	resp, err := env.uc.Track(context.Background(), order.TrackingToken)
	require.NoError(t, err)

	assert.Equal(t, order.ID, resp.OrderID)
	assert.Equal(t, "Presupuestado", resp.StatusLabel)
	assert.Equal(t, customer.Name, resp.CustomerName)
	assert.Equal(t, "Notebook Lenovo ThinkPad T480", resp.DeviceDescription)
	require.Len(t, resp.Items, 1)
}

func TestTrack_TokenDesconocido(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.uc.Track(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = env.uc.Track(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
