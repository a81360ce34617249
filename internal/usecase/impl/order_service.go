// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	EventRepo repository.OrderEventRepository
	Cache     repository.OrderCache
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	eventRepo repository.OrderEventRepository
	cache     repository.OrderCache
	publisher service.EventPublisher
	config    *config.Config
	policy    entity.LifecyclePolicy
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		eventRepo: params.EventRepo,
		cache:     params.Cache,
		publisher: params.Publisher,
		config:    params.Config,
		policy:    lifecyclePolicy(params.Config),
		logger:    params.Logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func lifecyclePolicy(cfg *config.Config) entity.LifecyclePolicy {
	if cfg.Orders == nil {
		return entity.DefaultLifecyclePolicy()
	}

	return entity.NewLifecyclePolicy(cfg.Orders.TransitionPolicy, cfg.Orders.ReturnWindow, cfg.Orders.DeliveryFallback)
}

// ListOrders returns a page of orders. Customers only ever see their own.
func (srv *orderService) ListOrders(ctx context.Context, actor entity.Actor, input *usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	filter := entity.OrderFilter{}

	if input.Status != "" {
		status := entity.OrderStatus(input.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrInvalidOrderStatus.WithDetails("status: " + input.Status)
		}
		filter.Status = status
	}

	if actor.Kind == entity.ActorKindCustomer {
		userID := actor.UserID
		filter.UserID = &userID
	} else {
		if input.ReturnStatus != "" {
			returnStatus := entity.ReturnExchangeStatus(input.ReturnStatus)
			if !returnStatus.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("returnStatus: " + input.ReturnStatus)
			}
			filter.ReturnStatus = returnStatus
		}
		filter.Search = strings.TrimSpace(input.Search)
	}

	page := max(input.Page, 1)
	pageSize := srv.config.PageSize(input.PageSize)
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	orders, total, err := srv.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{
		Orders:   orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetOrder returns one order, served from the cache when possible.
// A customer asking for someone else's order gets ErrOrderNotFound.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if actor.Kind == entity.ActorKindCustomer && !order.IsOwnedBy(actor.UserID) {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// ListOrderEvents returns the audit trail of an order, oldest first.
func (srv *orderService) ListOrderEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderEvent, error) {
	if _, err := srv.loadOrder(ctx, orderID); err != nil {
		return nil, err
	}

	events, err := srv.eventRepo.ListOrderEvents(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order events")
	}

	return events, nil
}

// UpdateOrderStatus applies an admin status change.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	update := entity.StatusUpdate{
		Status:         entity.OrderStatus(strings.TrimSpace(input.Status)),
		TrackingNumber: strings.TrimSpace(input.TrackingNumber),
		Carrier:        strings.TrimSpace(input.Carrier),
	}

	return srv.mutate(ctx, actor, orderID, entity.OrderEventStatusUpdated, update.TrackingNumber,
		func(order *entity.Order, now time.Time) error {
			return order.UpdateStatus(update, srv.policy, now)
		})
}

// CancelOrder cancels an order on behalf of an admin or its owner.
func (srv *orderService) CancelOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *usecase.CancelOrderInput) (*entity.Order, error) {
	reason := strings.TrimSpace(input.Reason)

	return srv.mutate(ctx, actor, orderID, entity.OrderEventCancelled, reason,
		func(order *entity.Order, now time.Time) error {
			return order.Cancel(actor.Kind, reason, now)
		})
}

// RequestReturnExchange opens the single return or exchange request of a delivered order.
func (srv *orderService) RequestReturnExchange(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *usecase.ReturnExchangeRequestInput) (*entity.Order, error) {
	kind := entity.ReturnExchangeType(strings.TrimSpace(input.Type))
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidReturnType
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domainerrors.ErrReturnReasonRequired
	}

	return srv.mutate(ctx, actor, orderID, entity.OrderEventReturnRequested, string(kind),
		func(order *entity.Order, now time.Time) error {
			return order.RequestReturnExchange(kind, input.Reason, srv.policy, now)
		})
}

// ProcessReturnExchange records the admin decision on a pending request.
func (srv *orderService) ProcessReturnExchange(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *usecase.ProcessReturnExchangeInput) (*entity.Order, error) {
	decision := entity.ReturnExchangeStatus(strings.TrimSpace(input.Action))
	if !decision.IsDecision() {
		return nil, domainerrors.ErrInvalidReturnAction.WithDetails("action: " + input.Action)
	}

	return srv.mutate(ctx, actor, orderID, entity.OrderEventReturnAdjudicated, string(decision),
		func(order *entity.Order, now time.Time) error {
			return order.AdjudicateReturnExchange(decision, input.AdminNotes, now)
		})
}

// CompleteReturnExchange closes an approved request.
func (srv *orderService) CompleteReturnExchange(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *usecase.CompleteReturnExchangeInput) (*entity.Order, error) {
	return srv.mutate(ctx, actor, orderID, entity.OrderEventReturnCompleted, "",
		func(order *entity.Order, now time.Time) error {
			return order.CompleteReturnExchange(input.AdminNotes, now)
		})
}

// mutate loads, validates and writes the order plus its audit entry in one transaction,
// then refreshes the cache and publishes the event.
func (srv *orderService) mutate(
	ctx context.Context,
	actor entity.Actor,
	orderID uuid.UUID,
	action entity.OrderEventAction,
	note string,
	apply func(order *entity.Order, now time.Time) error,
) (*entity.Order, error) {
	var (
		updated *entity.Order
		event   *entity.OrderEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		// 1. Load the current state
		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			return mapOrderRepoError(err, "failed to find order")
		}
		if actor.Kind == entity.ActorKindCustomer && !order.IsOwnedBy(actor.UserID) {
			return domainerrors.ErrOrderNotFound
		}

		// 2. Apply the transition
		from := order.Status
		now := srv.now()
		if err := apply(order, now); err != nil {
			return err
		}

		// 3. Persist, guarded by the version read in step 1
		if err := orderRepo.UpdateOrder(ctx, order); err != nil {
			return mapOrderRepoError(err, "failed to update order")
		}

		// 4. Record the audit entry
		event = entity.NewOrderEvent(order, action, from, actor, note, now)
		if err := repoFactory.NewOrderEventRepository().CreateOrderEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to record order event")
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	logs.FromContext(ctx, srv.logger).Info("Order updated",
		slog.String("order_id", updated.ID.String()),
		slog.String("action", string(action)),
		slog.String("from", string(event.FromStatus)),
		slog.String("to", string(updated.Status)),
		slog.String("actor_kind", string(actor.Kind)),
	)
	srv.afterCommit(ctx, updated, event)

	return updated, nil
}

// afterCommit runs the side effects that must not roll back the mutation.
func (srv *orderService) afterCommit(ctx context.Context, order *entity.Order, event *entity.OrderEvent) {
	logger := logs.FromContext(ctx, srv.logger)

	sideCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	// Writing the committed version keeps a slower reader's older snapshot from landing in the cache.
	if err := srv.cache.SetOrder(sideCtx, order); err != nil {
		logger.Warn("Failed to refresh cached order",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
		if err := srv.cache.DeleteOrder(sideCtx, order.ID); err != nil {
			logger.Warn("Failed to invalidate cached order",
				slog.String("order_id", order.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	message := service.NewOrderEventMessage(event, logs.RequestID(ctx))
	if err := srv.publisher.PublishOrderEvent(sideCtx, message); err != nil {
		logger.Error("Failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.String("event_id", message.EventID),
			slog.Any("error", err),
		)
	}
}

// loadOrder reads through the cache.
func (srv *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	logger := logs.FromContext(ctx, srv.logger)

	cached, err := srv.cache.GetOrder(ctx, orderID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		logger.Warn("Order cache read failed", slog.String("order_id", orderID.String()), slog.Any("error", err))
	}

	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, mapOrderRepoError(err, "failed to find order")
	}

	if err := srv.cache.SetOrder(ctx, order); err != nil {
		logger.Warn("Order cache write failed", slog.String("order_id", orderID.String()), slog.Any("error", err))
	}

	return order, nil
}

func mapOrderRepoError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrOrderVersionMismatch):
		return domainerrors.ErrOrderVersionConflict
	default:
		return errors.Wrap(err, message)
	}
}
