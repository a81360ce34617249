package entity

import (
	"testing"
	"time"

	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestOrder(status OrderStatus) *Order {
	created := testNow.Add(-72 * time.Hour)

	return &Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260311-7KQ2MX",
		UserID:      uuid.New(),
		Status:      status,
		Version:     1,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func deliveredOrder(ago time.Duration) *Order {
	order := newTestOrder(OrderStatusDelivered)
	deliveredAt := testNow.Add(-ago)
	order.DeliveredAt = &deliveredAt
	order.UpdatedAt = deliveredAt

	return order
}

func TestOrder_UpdateStatus_Matrix(t *testing.T) {
	policy := DefaultLifecyclePolicy()

	for _, current := range OrderStatuses() {
		for _, next := range OrderStatuses() {
			t.Run(string(current)+"->"+string(next), func(t *testing.T) {
				order := newTestOrder(current)

				err := order.UpdateStatus(StatusUpdate{Status: next}, policy, testNow)

				switch {
				case next == OrderStatusCancelled:
					assert.ErrorIs(t, err, domainerrors.ErrStatusRequiresCancel)
					assert.Equal(t, current, order.Status)
				case current.IsFinal():
					assert.ErrorIs(t, err, domainerrors.ErrOrderStatusLocked)
					assert.Equal(t, current, order.Status)
				case current == next:
					assert.ErrorIs(t, err, domainerrors.ErrOrderSameStatus)
					assert.Equal(t, current, order.Status)
				default:
					require.NoError(t, err)
					assert.Equal(t, next, order.Status)
					assert.Equal(t, testNow, order.UpdatedAt)
				}
				assert.True(t, order.Status.IsValid())
			})
		}
	}
}

func TestOrder_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	order := newTestOrder(OrderStatusPending)

	err := order.UpdateStatus(StatusUpdate{Status: "lost"}, DefaultLifecyclePolicy(), testNow)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestOrder_UpdateStatus_ForwardOnly(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	policy.Transition = TransitionPolicyForwardOnly

	order := newTestOrder(OrderStatusShipped)
	err := order.UpdateStatus(StatusUpdate{Status: OrderStatusConfirmed}, policy, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrOrderBackwardTransition)
	assert.Equal(t, OrderStatusShipped, order.Status)

	order = newTestOrder(OrderStatusPending)
	require.NoError(t, order.UpdateStatus(StatusUpdate{Status: OrderStatusShipped}, policy, testNow))
	assert.Equal(t, OrderStatusShipped, order.Status)
}

func TestOrder_UpdateStatus_PermissiveAllowsBackwardMove(t *testing.T) {
	order := newTestOrder(OrderStatusShipped)

	require.NoError(t, order.UpdateStatus(StatusUpdate{Status: OrderStatusPending}, DefaultLifecyclePolicy(), testNow))
	assert.Equal(t, OrderStatusPending, order.Status)
}

func TestOrder_UpdateStatus_DeliveredSetsTimestampAndTracking(t *testing.T) {
	order := newTestOrder(OrderStatusShipped)

	err := order.UpdateStatus(StatusUpdate{
		Status:         OrderStatusDelivered,
		TrackingNumber: "1Z999AA10123456784",
		Carrier:        "UPS",
	}, DefaultLifecyclePolicy(), testNow)

	require.NoError(t, err)
	require.NotNil(t, order.DeliveredAt)
	assert.Equal(t, testNow, *order.DeliveredAt)
	assert.Equal(t, "1Z999AA10123456784", order.TrackingNumber)
	assert.Equal(t, "UPS", order.Carrier)
}

// Scenario E: pending -> processing succeeds, repeating it is rejected.
func TestOrder_UpdateStatus_SameStatusAfterSuccess(t *testing.T) {
	order := newTestOrder(OrderStatusPending)
	policy := DefaultLifecyclePolicy()

	require.NoError(t, order.UpdateStatus(StatusUpdate{Status: OrderStatusProcessing}, policy, testNow))
	assert.Equal(t, OrderStatusProcessing, order.Status)

	err := order.UpdateStatus(StatusUpdate{Status: OrderStatusProcessing}, policy, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrOrderSameStatus)
}

func TestOrder_Cancel_Matrix(t *testing.T) {
	tests := []struct {
		status          OrderStatus
		adminAllowed    bool
		customerAllowed bool
	}{
		{OrderStatusPending, true, true},
		{OrderStatusConfirmed, true, true},
		{OrderStatusProcessing, true, false},
		{OrderStatusShipped, true, false},
		{OrderStatusDelivered, false, false},
		{OrderStatusCancelled, false, false},
	}

	for _, tt := range tests {
		for kind, allowed := range map[ActorKind]bool{ActorKindAdmin: tt.adminAllowed, ActorKindCustomer: tt.customerAllowed} {
			t.Run(string(kind)+"/"+string(tt.status), func(t *testing.T) {
				order := newTestOrder(tt.status)

				assert.Equal(t, allowed, order.CanBeCancelledBy(kind))

				err := order.Cancel(kind, "  changed my mind ", testNow)
				if !allowed {
					assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
					assert.Equal(t, tt.status, order.Status)
					assert.Nil(t, order.CancelledAt)

					return
				}
				require.NoError(t, err)
				assert.Equal(t, OrderStatusCancelled, order.Status)
				assert.Equal(t, "changed my mind", order.CancellationReason)
				assert.Equal(t, kind, order.CancelledBy)
				require.NotNil(t, order.CancelledAt)
				assert.Equal(t, testNow, *order.CancelledAt)
			})
		}
	}
}

// Scenario A: a shipped order cannot be cancelled by its customer.
func TestOrder_Cancel_CustomerShipped(t *testing.T) {
	order := newTestOrder(OrderStatusShipped)

	err := order.Cancel(ActorKindCustomer, "", testNow)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
	assert.Equal(t, OrderStatusShipped, order.Status)
}

// Scenario B: a pending order is cancelled with a reason.
func TestOrder_Cancel_CustomerPending(t *testing.T) {
	order := newTestOrder(OrderStatusPending)

	require.NoError(t, order.Cancel(ActorKindCustomer, "wrong size", testNow))

	assert.Equal(t, OrderStatusCancelled, order.Status)
	assert.Equal(t, "wrong size", order.CancellationReason)
}

func TestOrder_Cancel_Twice(t *testing.T) {
	order := newTestOrder(OrderStatusConfirmed)

	require.NoError(t, order.Cancel(ActorKindAdmin, "", testNow))
	assert.ErrorIs(t, order.Cancel(ActorKindAdmin, "", testNow), domainerrors.ErrOrderNotCancellable)
}

func TestOrder_CheckReturnEligibility(t *testing.T) {
	policy := DefaultLifecyclePolicy()

	tests := []struct {
		name    string
		order   func() *Order
		wantErr error
	}{
		{
			name:  "delivered an hour ago",
			order: func() *Order { return deliveredOrder(time.Hour) },
		},
		{
			name:  "delivered exactly at the window edge",
			order: func() *Order { return deliveredOrder(24 * time.Hour) },
		},
		{
			name:    "delivered just past the window",
			order:   func() *Order { return deliveredOrder(24*time.Hour + time.Second) },
			wantErr: domainerrors.ErrReturnWindowExpired,
		},
		{
			name:    "not delivered",
			order:   func() *Order { return newTestOrder(OrderStatusShipped) },
			wantErr: domainerrors.ErrReturnNotEligible,
		},
		{
			name:    "cancelled",
			order:   func() *Order { return newTestOrder(OrderStatusCancelled) },
			wantErr: domainerrors.ErrReturnNotEligible,
		},
		{
			name: "already requested",
			order: func() *Order {
				o := deliveredOrder(time.Hour)
				o.ReturnExchange = &ReturnExchange{Type: ReturnExchangeTypeReturn, Status: ReturnExchangeStatusRejected}

				return o
			},
			wantErr: domainerrors.ErrReturnAlreadyRequested,
		},
		{
			name: "delivery time falls back to updatedAt",
			order: func() *Order {
				o := newTestOrder(OrderStatusDelivered)
				o.UpdatedAt = testNow.Add(-2 * time.Hour)

				return o
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order().CheckReturnEligibility(policy, testNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrder_CheckReturnEligibility_StrictFallback(t *testing.T) {
	policy := DefaultLifecyclePolicy()
	policy.DeliveryFallback = DeliveryFallbackStrict

	order := newTestOrder(OrderStatusDelivered)
	order.UpdatedAt = testNow.Add(-time.Hour)

	assert.ErrorIs(t, order.CheckReturnEligibility(policy, testNow), domainerrors.ErrReturnNotEligible)
}

// Scenario C: delivered 12 hours ago, a return for a fabric defect is accepted.
func TestOrder_RequestReturnExchange_WithinWindow(t *testing.T) {
	order := deliveredOrder(12 * time.Hour)

	err := order.RequestReturnExchange(ReturnExchangeTypeReturn, "fabric defect", DefaultLifecyclePolicy(), testNow)

	require.NoError(t, err)
	require.NotNil(t, order.ReturnExchange)
	assert.Equal(t, ReturnExchangeStatusRequested, order.ReturnExchange.Status)
	assert.Equal(t, ReturnExchangeTypeReturn, order.ReturnExchange.Type)
	assert.Equal(t, "fabric defect", order.ReturnExchange.Reason)
	assert.Equal(t, testNow, order.ReturnExchange.RequestedAt)
	assert.Equal(t, OrderStatusDelivered, order.Status)
}

// Scenario D: delivered 3 days ago, the window has closed.
func TestOrder_RequestReturnExchange_WindowExpired(t *testing.T) {
	order := deliveredOrder(72 * time.Hour)

	err := order.RequestReturnExchange(ReturnExchangeTypeReturn, "fabric defect", DefaultLifecyclePolicy(), testNow)

	assert.ErrorIs(t, err, domainerrors.ErrReturnWindowExpired)
	assert.Nil(t, order.ReturnExchange)
}

func TestOrder_RequestReturnExchange_Validation(t *testing.T) {
	order := deliveredOrder(time.Hour)
	policy := DefaultLifecyclePolicy()

	assert.ErrorIs(t, order.RequestReturnExchange("refund", "too small", policy, testNow), domainerrors.ErrInvalidReturnType)
	assert.ErrorIs(t, order.RequestReturnExchange(ReturnExchangeTypeExchange, "   ", policy, testNow), domainerrors.ErrReturnReasonRequired)
	assert.Nil(t, order.ReturnExchange)
}

func TestOrder_RequestReturnExchange_OnlyOnce(t *testing.T) {
	order := deliveredOrder(time.Hour)
	policy := DefaultLifecyclePolicy()

	require.NoError(t, order.RequestReturnExchange(ReturnExchangeTypeExchange, "need a larger size", policy, testNow))

	err := order.RequestReturnExchange(ReturnExchangeTypeReturn, "changed my mind", policy, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrReturnAlreadyRequested)
	assert.Equal(t, ReturnExchangeTypeExchange, order.ReturnExchange.Type)
}

// Scenario F: approving a pending return stores the notes verbatim.
func TestOrder_AdjudicateReturnExchange_Approve(t *testing.T) {
	order := deliveredOrder(time.Hour)
	require.NoError(t, order.RequestReturnExchange(ReturnExchangeTypeReturn, "fabric defect", DefaultLifecyclePolicy(), testNow))

	later := testNow.Add(time.Hour)
	err := order.AdjudicateReturnExchange(ReturnExchangeStatusApproved, "Approved, refund in 5 days", later)

	require.NoError(t, err)
	assert.Equal(t, ReturnExchangeStatusApproved, order.ReturnExchange.Status)
	require.NotNil(t, order.ReturnExchange.ProcessedAt)
	assert.Equal(t, later, *order.ReturnExchange.ProcessedAt)
	assert.Equal(t, "Approved, refund in 5 days", order.ReturnExchange.AdminNotes)
}

func TestOrder_AdjudicateReturnExchange_OnlyFromRequested(t *testing.T) {
	for _, status := range []ReturnExchangeStatus{ReturnExchangeStatusApproved, ReturnExchangeStatusRejected, ReturnExchangeStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			order := deliveredOrder(time.Hour)
			order.ReturnExchange = &ReturnExchange{Type: ReturnExchangeTypeReturn, Status: status, AdminNotes: "original"}

			err := order.AdjudicateReturnExchange(ReturnExchangeStatusRejected, "again", testNow)

			assert.ErrorIs(t, err, domainerrors.ErrReturnNotPending)
			assert.Equal(t, status, order.ReturnExchange.Status)
			assert.Equal(t, "original", order.ReturnExchange.AdminNotes)
		})
	}
}

func TestOrder_AdjudicateReturnExchange_Errors(t *testing.T) {
	order := deliveredOrder(time.Hour)

	assert.ErrorIs(t, order.AdjudicateReturnExchange(ReturnExchangeStatusApproved, "", testNow), domainerrors.ErrReturnNotFound)
	assert.ErrorIs(t, order.AdjudicateReturnExchange(ReturnExchangeStatusCompleted, "", testNow), domainerrors.ErrInvalidReturnAction)
	assert.ErrorIs(t, order.AdjudicateReturnExchange(ReturnExchangeStatusRequested, "", testNow), domainerrors.ErrInvalidReturnAction)
}

func TestOrder_CompleteReturnExchange(t *testing.T) {
	order := deliveredOrder(time.Hour)
	order.ReturnExchange = &ReturnExchange{Type: ReturnExchangeTypeExchange, Status: ReturnExchangeStatusApproved, AdminNotes: "Approved"}

	require.NoError(t, order.CompleteReturnExchange(" replacement shipped ", testNow))

	assert.Equal(t, ReturnExchangeStatusCompleted, order.ReturnExchange.Status)
	require.NotNil(t, order.ReturnExchange.CompletedAt)
	assert.Equal(t, "Approved\nreplacement shipped", order.ReturnExchange.AdminNotes)
}

func TestOrder_CompleteReturnExchange_RequiresApproval(t *testing.T) {
	order := deliveredOrder(time.Hour)
	assert.ErrorIs(t, order.CompleteReturnExchange("", testNow), domainerrors.ErrReturnNotFound)

	order.ReturnExchange = &ReturnExchange{Type: ReturnExchangeTypeReturn, Status: ReturnExchangeStatusRejected}
	assert.ErrorIs(t, order.CompleteReturnExchange("", testNow), domainerrors.ErrReturnNotApproved)
}

func TestNewLifecyclePolicy(t *testing.T) {
	tests := map[string]struct {
		transition string
		window     time.Duration
		fallback   string
		want       LifecyclePolicy
	}{
		"empty values keep defaults": {
			want: DefaultLifecyclePolicy(),
		},
		"overrides": {
			transition: "forward_only",
			window:     48 * time.Hour,
			fallback:   "strict",
			want:       LifecyclePolicy{Transition: TransitionPolicyForwardOnly, ReturnWindow: 48 * time.Hour, DeliveryFallback: DeliveryFallbackStrict},
		},
		"unknown values and negative window": {
			transition: "backwards",
			window:     -time.Hour,
			fallback:   "guess",
			want:       DefaultLifecyclePolicy(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLifecyclePolicy(tt.transition, tt.window, tt.fallback))
		})
	}
}
