//go:build integration

package repo_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/repo"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/trm"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDB(ctx context.Context, t *testing.T) *sqlx.DB {
	t.Helper()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("ferremas"),
		postgres.WithUsername("ferremas"),
		postgres.WithPassword("ferremas"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	_, filename, _, _ := runtime.Caller(0)
	migrations := "file://" + filepath.Join(filepath.Dir(filename), "..", "..", "migrations")
	m, err := migrate.New(migrations, connStr)
	require.NoError(t, err)
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("failed to run migrations: %v", err)
	}
	_, _ = m.Close()

	db, err := sqlx.Connect("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func seedProduct(t *testing.T, db *sqlx.DB, name, price string, stock int) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, "INSERT INTO products (name, brand, price, stock) VALUES ($1, 'Bosch', $2, $3) RETURNING id",
		name, price, stock)
	require.NoError(t, err)
	return id
}

func TestPostgresRepo(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := setupDB(ctx, t)
	r := repo.NewPostgresRepo(db)
	tm := trm.NewManager(db)

	drill := seedProduct(t, db, "Taladro", "49990.50", 3)
	const owner entities.UserID = 7

	t.Run("product price is rounded to CLP", func(t *testing.T) {
		p, err := r.GetProduct(ctx, drill)
		require.NoError(t, err)
		assert.Equal(t, entities.Money(49991), p.Price)

		_, err = r.GetProduct(ctx, 9999)
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})

	var cart entities.Cart
	t.Run("cart lifecycle", func(t *testing.T) {
		_, err := r.ActiveCart(ctx, owner)
		require.ErrorIs(t, err, entities.ErrCartNotFound)

		cart, err = r.CreateCart(ctx, owner)
		require.NoError(t, err)
		again, err := r.CreateCart(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, cart.ID, again.ID)

		err = tm.Do(ctx, func(ctx context.Context) error {
			locked, err := r.ActiveCart(ctx, owner)
			if err != nil {
				return err
			}
			id, err := r.AddCartItem(ctx, locked.ID, entities.LineItem{ProductID: drill, Name: "Taladro", Quantity: 2, UnitPrice: 49991})
			if err != nil {
				return err
			}
			locked.Items = append(locked.Items, entities.LineItem{ID: id})
			locked.Subtotal, locked.Tax, locked.Total = 84015, 15967, 99982
			return r.UpdateCart(ctx, locked)
		})
		require.NoError(t, err)

		cart, err = r.ActiveCart(ctx, owner)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, entities.Money(99982), cart.Total)

		_, err = r.AddCartItem(ctx, cart.ID, entities.LineItem{ProductID: drill, Quantity: 1, UnitPrice: 1})
		assert.ErrorIs(t, err, entities.ErrValidation)

		assert.ErrorIs(t, r.DeleteCartItem(ctx, cart.ID, 424242), entities.ErrLineItemNotFound)
	})

	t.Run("reserve stock", func(t *testing.T) {
		require.NoError(t, r.ReserveStock(ctx, drill, 2))
		assert.ErrorIs(t, r.ReserveStock(ctx, drill, 2), entities.ErrValidation)
		assert.ErrorIs(t, r.ReserveStock(ctx, 9999, 1), entities.ErrProductNotFound)

		p, err := r.GetProduct(ctx, drill)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Stock)
	})

	var handlerA, handlerB entities.StaffProfile
	t.Run("staff profiles and loads", func(t *testing.T) {
		var err error
		now := time.Now().UTC()
		handlerA, err = r.CreateProfile(ctx, entities.StaffProfile{UserID: 100, Role: entities.RoleWarehouseHandler, CreatedAt: now})
		require.NoError(t, err)
		handlerB, err = r.CreateProfile(ctx, entities.StaffProfile{UserID: 101, Role: entities.RoleWarehouseHandler, CreatedAt: now})
		require.NoError(t, err)

		_, err = r.CreateProfile(ctx, entities.StaffProfile{UserID: 100, Role: entities.RoleAdmin, CreatedAt: now})
		assert.ErrorIs(t, err, entities.ErrValidation)

		for _, p := range []entities.StaffProfile{handlerA, handlerB} {
			p.OnShift = true
			p.ShiftStartedAt = &now
			require.NoError(t, r.UpdateShift(ctx, p))
		}

		got, err := r.ProfileByUser(ctx, 100)
		require.NoError(t, err)
		assert.True(t, got.OnShift)
		require.NotNil(t, got.ShiftStartedAt)

		loads, err := r.HandlerLoads(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entities.HandlerLoad{
			{Handler: handlerA.ID, ActiveOrders: 0},
			{Handler: handlerB.ID, ActiveOrders: 0},
		}, loads)
	})

	t.Run("order lifecycle", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		order := entities.NewOrderFromCart(cart, now)
		order.AssignedHandler = &handlerA.ID

		created, err := r.CreateOrder(ctx, order)
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		payment, err := r.CreatePayment(ctx, entities.Payment{
			OrderID: created.ID, TransactionID: "sandbox_1", Status: entities.PaymentStatusPending,
			Amount: 99950, CreatedAt: now,
		})
		require.NoError(t, err)

		loads, err := r.HandlerLoads(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, loads[0].ActiveOrders)
		assert.Equal(t, 0, loads[1].ActiveOrders)

		got, err := r.GetOrder(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusRequested, got.Status)
		assert.True(t, got.IsAssignedTo(handlerA.ID))
		require.Len(t, got.Items, 1)
		require.Len(t, got.History, 1)
		assert.Equal(t, owner, got.History[0].Actor)

		// системный переход сохраняется с пустым actor
		got.Status = entities.OrderStatusPreparing
		got.LastModifiedBy = entities.SystemActor
		got.History = append(got.History, entities.StatusChange{Status: entities.OrderStatusPreparing, ChangedAt: now, Actor: entities.SystemActor})
		require.NoError(t, r.UpdateOrderStatus(ctx, got, entities.OrderStatusRequested))

		assert.ErrorIs(t, r.UpdateOrderStatus(ctx, got, entities.OrderStatusRequested), entities.ErrStaleOrder)

		got, err = r.GetOrder(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, got.History, 2)
		assert.Equal(t, entities.SystemActor, got.History[1].Actor)
		assert.Equal(t, entities.SystemActor, got.LastModifiedBy)

		require.NoError(t, r.UpdatePaymentStatus(ctx, payment.ID, entities.PaymentStatusCompleted))
		p, err := r.PaymentByTransaction(ctx, "sandbox_1")
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusCompleted, p.Status)

		// у заказа не может быть второго платежа
		_, err = r.CreatePayment(ctx, entities.Payment{
			OrderID: created.ID, TransactionID: "sandbox_2", Status: entities.PaymentStatusPending,
			Amount: 99950, CreatedAt: now,
		})
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "order_id", ve.Field)

		require.NoError(t, r.SetAssignedHandler(ctx, created.ID, &handlerB.ID))
		orders, err := r.HandlerOrders(ctx, handlerB.ID)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, created.ID, orders[0].ID)

		orders, err = r.HandlerOrders(ctx, handlerA.ID)
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

type orderCreator interface {
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
}

func seedOrder(ctx context.Context, t *testing.T, r orderCreator, handler entities.HandlerID, status entities.OrderStatus) {
	t.Helper()
	now := time.Now().UTC()
	_, err := r.CreateOrder(ctx, entities.Order{
		Customer:        7,
		Status:          status,
		ShippingMethod:  entities.ShippingPickup,
		AssignedHandler: &handler,
		Total:           1190,
		Items:           []entities.LineItem{{ProductID: 1, Name: "Tornillo", Quantity: 1, UnitPrice: 1190}},
		History:         []entities.StatusChange{{Status: status, ChangedAt: now, Actor: 7}},
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)
}

func TestPostgresRepo_HandlerLoads(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := setupDB(ctx, t)
	r := repo.NewPostgresRepo(db)
	now := time.Now().UTC()

	profile := func(userID entities.UserID, role entities.StaffRole, onShift bool) entities.StaffProfile {
		p, err := r.CreateProfile(ctx, entities.StaffProfile{UserID: userID, Role: role, CreatedAt: now})
		require.NoError(t, err)
		if onShift {
			p.OnShift = true
			p.ShiftStartedAt = &now
			require.NoError(t, r.UpdateShift(ctx, p))
		}
		return p
	}

	a := profile(200, entities.RoleWarehouseHandler, true)
	b := profile(201, entities.RoleWarehouseHandler, true)
	c := profile(202, entities.RoleWarehouseHandler, false)
	accountant := profile(203, entities.RoleAccountant, true)

	seedOrder(ctx, t, r, a.ID, entities.OrderStatusRequested)
	seedOrder(ctx, t, r, a.ID, entities.OrderStatusPreparing)
	seedOrder(ctx, t, r, b.ID, entities.OrderStatusPreparing)
	// собранные и закрытые заказы нагрузку не дают
	seedOrder(ctx, t, r, b.ID, entities.OrderStatusReadyForPickup)
	seedOrder(ctx, t, r, b.ID, entities.OrderStatusDelivered)
	seedOrder(ctx, t, r, b.ID, entities.OrderStatusCancelled)

	loads, err := r.HandlerLoads(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entities.HandlerLoad{
		{Handler: a.ID, ActiveOrders: 2},
		{Handler: b.ID, ActiveOrders: 1},
	}, loads)

	for _, l := range loads {
		assert.NotEqual(t, c.ID, l.Handler, "off-shift handler must not get orders")
		assert.NotEqual(t, accountant.ID, l.Handler, "only warehouse handlers get orders")
	}

	picked, ok := fulfillment.PickHandler(loads)
	require.True(t, ok)
	assert.Equal(t, b.ID, picked)
}

func TestPostgresRepo_RecordShift(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := setupDB(ctx, t)
	r := repo.NewPostgresRepo(db)

	p, err := r.CreateProfile(ctx, entities.StaffProfile{UserID: 300, Role: entities.RoleWarehouseHandler, CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	start := time.Now().UTC().Truncate(time.Microsecond)
	for i := range 2 {
		started := start.Add(time.Duration(i) * 8 * time.Hour)
		ended := started.Add(4 * time.Hour)

		p.OnShift, p.ShiftStartedAt, p.ShiftEndedAt = true, &started, nil
		require.NoError(t, r.RecordShift(ctx, p))
		assert.ErrorIs(t, r.RecordShift(ctx, p), entities.ErrValidation, "second open shift")

		p.OnShift, p.ShiftEndedAt = false, &ended
		require.NoError(t, r.RecordShift(ctx, p))
	}

	var shifts []struct {
		StartedAt time.Time  `db:"started_at"`
		EndedAt   *time.Time `db:"ended_at"`
	}
	require.NoError(t, db.Select(&shifts, "SELECT started_at, ended_at FROM staff_shifts WHERE staff_id = $1 ORDER BY started_at", p.ID))

	// смены не перезаписывают друг друга
	require.Len(t, shifts, 2)
	for i, s := range shifts {
		assert.True(t, start.Add(time.Duration(i)*8*time.Hour).Equal(s.StartedAt))
		require.NotNil(t, s.EndedAt)
		assert.True(t, s.StartedAt.Add(4*time.Hour).Equal(*s.EndedAt))
	}
}
