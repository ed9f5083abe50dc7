package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/ferremas-store/internal/entities"
	"github.com/SergeyBogomolovv/ferremas-store/internal/fulfillment"
	"github.com/SergeyBogomolovv/ferremas-store/internal/middleware"
	"github.com/SergeyBogomolovv/ferremas-store/internal/service"
	"github.com/SergeyBogomolovv/ferremas-store/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context, owner entities.UserID) (entities.Cart, error)
	AddItem(ctx context.Context, owner entities.UserID, productID int64, quantity int) (entities.Cart, error)
	UpdateItem(ctx context.Context, owner entities.UserID, itemID int64, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, owner entities.UserID, itemID int64) (entities.Cart, error)
	SetShipping(ctx context.Context, owner entities.UserID, method entities.ShippingMethod, address string) (entities.Cart, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, owner entities.UserID, hooks ...fulfillment.Hook) (service.Receipt, error)
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	AdvanceOrder(ctx context.Context, id int64, to entities.OrderStatus, by entities.StaffProfile, hooks ...fulfillment.Hook) (entities.Order, error)
	CancelOrder(ctx context.Context, id int64, actor entities.UserID, hooks ...fulfillment.Hook) (entities.Order, error)
	AssignHandler(ctx context.Context, id int64) (entities.Order, error)
	ListHandlerOrders(ctx context.Context, handler entities.HandlerID) ([]entities.Order, error)
}

type StaffService interface {
	CreateProfile(ctx context.Context, userID entities.UserID, role entities.StaffRole, hooks ...fulfillment.Hook) (entities.StaffProfile, error)
	HandlerByUser(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error)
	ClockIn(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error)
	ClockOut(ctx context.Context, userID entities.UserID) (entities.StaffProfile, error)
}

// Hooks побочные эффекты, которые передаются сервисам для запуска после коммита.
type Hooks struct {
	OrderPlaced    []fulfillment.Hook
	OrderAdvanced  []fulfillment.Hook
	OrderCancelled []fulfillment.Hook
	ProfileCreated []fulfillment.Hook
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate

	cart     CartService
	checkout CheckoutService
	orders   OrderService
	staff    StaffService
	hooks    Hooks
}

func NewHTTPHandler(
	logger *slog.Logger,
	cart CartService,
	checkout CheckoutService,
	orders OrderService,
	staff StaffService,
	hooks Hooks,
) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		cart:     cart,
		checkout: checkout,
		orders:   orders,
		staff:    staff,
		hooks:    hooks,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identify)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Patch("/cart/items/{id}", h.UpdateCartItem)
		r.Delete("/cart/items/{id}", h.RemoveCartItem)
		r.Put("/cart/shipping", h.SetShipping)

		r.Post("/checkout", h.Checkout)
		r.Get("/orders/{id}", h.GetOrder)

		r.Route("/warehouse", func(r chi.Router) {
			// очередь есть только у кладовщика, статус может менять и администратор
			r.With(middleware.RequireRole(entities.RoleWarehouseHandler)).Get("/orders", h.ListHandlerOrders)
			r.With(middleware.RequireRole(entities.RoleWarehouseHandler, entities.RoleAdmin)).Post("/orders/{id}/status", h.AdvanceOrder)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(entities.RoleAdmin))
			r.Post("/orders/{id}/cancel", h.CancelOrder)
			r.Post("/orders/{id}/assign", h.AssignHandler)
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(middleware.RequireRole(entities.RoleAdmin)).Post("/profiles", h.CreateProfile)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(entities.RoleWarehouseHandler, entities.RoleAccountant, entities.RoleAdmin))
				r.Post("/shift/start", h.ClockIn)
				r.Post("/shift/end", h.ClockOut)
			})
		})
	})
}

// GetCart возвращает активную корзину.
// @Summary      Текущая корзина
// @Description  Возвращает активную корзину пользователя, создаёт пустую при первом обращении
// @Tags         cart
// @Param        X-User-ID  header  int  true  "ID пользователя"
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "Пользователь не определён"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	actor := h.actor(r)

	cart, err := h.cart.GetCart(r.Context(), actor.UserID)
	if err != nil {
		h.writeError(w, r, err, "failed to get cart")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// AddCartItem добавляет товар в корзину.
// @Summary      Добавить товар
// @Description  Добавляет товар в корзину по текущей цене каталога. Повторное добавление увеличивает количество
// @Tags         cart
// @Accept       json
// @Param        X-User-ID  header  int             true  "ID пользователя"
// @Param        request    body    AddItemRequest  true  "Товар и количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items [post]
func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.cart.AddItem(r.Context(), h.actor(r).UserID, req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err, "failed to add cart item")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// UpdateCartItem меняет количество позиции.
// @Summary      Изменить количество
// @Tags         cart
// @Accept       json
// @Param        X-User-ID  header  int                true  "ID пользователя"
// @Param        id         path    int                true  "ID позиции корзины"
// @Param        request    body    UpdateItemRequest  true  "Новое количество"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{id} [patch]
func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.cart.UpdateItem(r.Context(), h.actor(r).UserID, itemID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err, "failed to update cart item")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// RemoveCartItem удаляет позицию из корзины.
// @Summary      Удалить позицию
// @Tags         cart
// @Param        X-User-ID  header  int  true  "ID пользователя"
// @Param        id         path    int  true  "ID позиции корзины"
// @Success      200  {object}  Cart
// @Failure      404  {object}  utils.ErrorResponse "Позиция не найдена"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{id} [delete]
func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	cart, err := h.cart.RemoveItem(r.Context(), h.actor(r).UserID, itemID)
	if err != nil {
		h.writeError(w, r, err, "failed to remove cart item")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// SetShipping выбирает способ доставки.
// @Summary      Способ доставки
// @Description  Самовывоз бесплатный, для доставки на дом нужен адрес
// @Tags         cart
// @Accept       json
// @Param        X-User-ID  header  int              true  "ID пользователя"
// @Param        request    body    ShippingRequest  true  "Способ и адрес"
// @Success      200  {object}  Cart
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/shipping [put]
func (h *HTTPHandler) SetShipping(w http.ResponseWriter, r *http.Request) {
	var req ShippingRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.cart.SetShipping(r.Context(), h.actor(r).UserID, entities.ShippingMethod(req.Method), req.Address)
	if err != nil {
		h.writeError(w, r, err, "failed to set shipping")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(cart), http.StatusOK)
}

// Checkout оформляет заказ из активной корзины.
// @Summary      Оформить заказ
// @Description  Списывает сумму, округлённую вниз до шага шлюза, и создаёт заказ в статусе REQUESTED
// @Tags         orders
// @Param        X-User-ID  header  int  true  "ID пользователя"
// @Success      201  {object}  Receipt
// @Failure      400  {object}  utils.ValidationErrorResponse "Корзина пуста или изменилась"
// @Failure      422  {object}  utils.ErrorResponse "Сумма меньше минимальной для шлюза"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.checkout.Checkout(r.Context(), h.actor(r).UserID, h.hooks.OrderPlaced...)
	if err != nil {
		checkoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
		h.writeError(w, r, err, "failed to checkout")
		return
	}
	checkoutsTotal.WithLabelValues("placed").Inc()

	utils.WriteJSON(w, ReceiptToJSON(receipt), http.StatusCreated)
}

// GetOrder возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Покупатель видит только свои заказы, сотрудники любые
// @Tags         orders
// @Param        X-User-ID  header  int  true  "ID пользователя"
// @Param        id         path    int  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "failed to get order")
		return
	}

	actor := h.actor(r)
	if actor.Role == entities.RoleCustomer && order.Customer != actor.UserID {
		utils.WriteError(w, entities.ErrOrderNotFound.Error(), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListHandlerOrders очередь заказов кладовщика. Доступна только роли WAREHOUSE_HANDLER.
// @Summary      Мои заказы
// @Tags         warehouse
// @Param        X-User-ID    header  int     true  "ID пользователя"
// @Param        X-User-Role  header  string  true  "Роль"
// @Success      200  {array}   Order
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Профиль не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /warehouse/orders [get]
func (h *HTTPHandler) ListHandlerOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.staff.HandlerByUser(ctx, h.actor(r).UserID)
	if err != nil {
		h.writeError(w, r, err, "failed to get staff profile")
		return
	}

	orders, err := h.orders.ListHandlerOrders(ctx, profile.ID)
	if err != nil {
		h.writeError(w, r, err, "failed to list handler orders")
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// AdvanceOrder переводит заказ в следующий статус.
// @Summary      Сменить статус заказа
// @Description  Кладовщик может менять только назначенные ему заказы, по таблице переходов
// @Tags         warehouse
// @Accept       json
// @Param        X-User-ID    header  int                  true  "ID пользователя"
// @Param        X-User-Role  header  string               true  "Роль"
// @Param        id           path    int                  true  "ID заказа"
// @Param        request      body    AdvanceOrderRequest  true  "Новый статус"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Заказ назначен другому кладовщику"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Недопустимый переход"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /warehouse/orders/{id}/status [post]
func (h *HTTPHandler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req AdvanceOrderRequest
	if !h.decode(w, r, &req) {
		return
	}

	actor := h.actor(r)
	by := entities.StaffProfile{UserID: actor.UserID, Role: actor.Role}
	if actor.Role != entities.RoleAdmin {
		var err error
		by, err = h.staff.HandlerByUser(ctx, actor.UserID)
		if err != nil {
			h.writeError(w, r, err, "failed to get staff profile")
			return
		}
	}

	order, err := h.orders.AdvanceOrder(ctx, id, entities.OrderStatus(req.Status), by, h.hooks.OrderAdvanced...)
	if err != nil {
		h.writeError(w, r, err, "failed to advance order")
		return
	}
	orderTransitionsTotal.WithLabelValues(string(order.Status)).Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CancelOrder отменяет заказ.
// @Summary      Отменить заказ
// @Description  Административная отмена, доступна из любого незавершённого статуса
// @Tags         admin
// @Param        X-User-ID    header  int     true  "ID пользователя"
// @Param        X-User-Role  header  string  true  "Роль"
// @Param        id           path    int     true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      409  {object}  utils.ErrorResponse "Заказ уже закрыт"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.CancelOrder(r.Context(), id, h.actor(r).UserID, h.hooks.OrderCancelled...)
	if err != nil {
		h.writeError(w, r, err, "failed to cancel order")
		return
	}
	orderTransitionsTotal.WithLabelValues(string(order.Status)).Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// AssignHandler назначает заказ наименее загруженному кладовщику.
// @Summary      Переназначить заказ
// @Tags         admin
// @Param        X-User-ID    header  int     true  "ID пользователя"
// @Param        X-User-Role  header  string  true  "Роль"
// @Param        id           path    int     true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Нет кладовщиков на смене"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /admin/orders/{id}/assign [post]
func (h *HTTPHandler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.AssignHandler(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "failed to assign handler")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CreateProfile создаёт профиль сотрудника.
// @Summary      Создать профиль
// @Tags         staff
// @Accept       json
// @Param        X-User-ID    header  int                   true  "ID пользователя"
// @Param        X-User-Role  header  string                true  "Роль"
// @Param        request      body    CreateProfileRequest  true  "Пользователь и роль"
// @Success      201  {object}  StaffProfile
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      403  {object}  utils.ErrorResponse "Нет доступа"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /staff/profiles [post]
func (h *HTTPHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req CreateProfileRequest
	if !h.decode(w, r, &req) {
		return
	}

	profile, err := h.staff.CreateProfile(r.Context(), entities.UserID(req.UserID), entities.StaffRole(req.Role), h.hooks.ProfileCreated...)
	if err != nil {
		h.writeError(w, r, err, "failed to create profile")
		return
	}

	utils.WriteJSON(w, StaffProfileEntityToJSON(profile), http.StatusCreated)
}

// ClockIn начало смены.
// @Summary      Начать смену
// @Tags         staff
// @Param        X-User-ID    header  int     true  "ID пользователя"
// @Param        X-User-Role  header  string  true  "Роль"
// @Success      200  {object}  StaffProfile
// @Failure      400  {object}  utils.ValidationErrorResponse "Смена уже начата"
// @Failure      404  {object}  utils.ErrorResponse "Профиль не найден"
// @Router       /staff/shift/start [post]
func (h *HTTPHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	profile, err := h.staff.ClockIn(r.Context(), h.actor(r).UserID)
	if err != nil {
		h.writeError(w, r, err, "failed to start shift")
		return
	}
	utils.WriteJSON(w, StaffProfileEntityToJSON(profile), http.StatusOK)
}

// ClockOut конец смены.
// @Summary      Закончить смену
// @Tags         staff
// @Param        X-User-ID    header  int     true  "ID пользователя"
// @Param        X-User-Role  header  string  true  "Роль"
// @Success      200  {object}  StaffProfile
// @Failure      400  {object}  utils.ValidationErrorResponse "Смена не начата"
// @Failure      404  {object}  utils.ErrorResponse "Профиль не найден"
// @Router       /staff/shift/end [post]
func (h *HTTPHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	profile, err := h.staff.ClockOut(r.Context(), h.actor(r).UserID)
	if err != nil {
		h.writeError(w, r, err, "failed to end shift")
		return
	}
	utils.WriteJSON(w, StaffProfileEntityToJSON(profile), http.StatusOK)
}

// actor всегда есть: маршруты закрыты middleware.Identify.
func (h *HTTPHandler) actor(r *http.Request) middleware.Actor {
	actor, _ := middleware.ActorFrom(r.Context())
	return actor
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteFieldError(w, "id", "must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

var notFoundErrors = []error{
	entities.ErrCartNotFound,
	entities.ErrOrderNotFound,
	entities.ErrLineItemNotFound,
	entities.ErrPaymentNotFound,
	entities.ErrProductNotFound,
	entities.ErrProfileNotFound,
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var (
		ve   *entities.ValidationError
		te   *entities.TransitionError
		bme  *entities.BelowMinimumError
		verr validator.ValidationErrors
	)

	switch {
	case errors.As(err, &ve):
		utils.WriteFieldError(w, ve.Field, ve.Reason, http.StatusBadRequest)
	case errors.As(err, &verr):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, notFoundMessage(err), http.StatusNotFound)
	case errors.As(err, &te):
		utils.WriteError(w, te.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrStaleOrder):
		utils.WriteError(w, "order was changed concurrently, retry", http.StatusConflict)
	case errors.As(err, &bme):
		utils.WriteError(w, bme.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrForbidden):
		utils.WriteError(w, "forbidden", http.StatusForbidden)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func notFoundMessage(err error) string {
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			return nf.Error()
		}
	}
	return entities.ErrNotFound.Error()
}

func checkoutResult(err error) string {
	switch {
	case errors.Is(err, entities.ErrBelowMinimumAmount):
		return "below_minimum"
	case errors.Is(err, entities.ErrValidation):
		return "rejected"
	default:
		return "failed"
	}
}

// newValidator сообщает об ошибках по json-именам полей.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
