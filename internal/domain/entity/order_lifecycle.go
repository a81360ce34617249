package entity

import (
	"strings"
	"time"

	domainerrors "storefront/internal/domain/errors"
)

// TransitionPolicy controls which status moves the admin update path accepts.
type TransitionPolicy string

const (
	// TransitionPolicyPermissive accepts any different, non-final target.
	TransitionPolicyPermissive TransitionPolicy = "permissive"
	// TransitionPolicyForwardOnly only accepts targets further along the fulfilment line.
	TransitionPolicyForwardOnly TransitionPolicy = "forward_only"
)

// DeliveryFallback decides how delivery time is derived when DeliveredAt is missing.
type DeliveryFallback string

const (
	// DeliveryFallbackUpdatedAt uses the order's last update time.
	DeliveryFallbackUpdatedAt DeliveryFallback = "updated_at"
	// DeliveryFallbackStrict treats the order as having no delivery time.
	DeliveryFallbackStrict DeliveryFallback = "strict"
)

// DefaultReturnWindow is how long after delivery a return or exchange may be requested.
const DefaultReturnWindow = 24 * time.Hour

// LifecyclePolicy holds the tunable rules of the order state machine.
type LifecyclePolicy struct {
	Transition       TransitionPolicy
	ReturnWindow     time.Duration
	DeliveryFallback DeliveryFallback
}

// DefaultLifecyclePolicy returns the permissive policy with a one day return window.
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{
		Transition:       TransitionPolicyPermissive,
		ReturnWindow:     DefaultReturnWindow,
		DeliveryFallback: DeliveryFallbackUpdatedAt,
	}
}

// NewLifecyclePolicy builds a policy from configuration values.
// Empty or unrecognised values and a non-positive window keep the defaults.
func NewLifecyclePolicy(transition string, returnWindow time.Duration, deliveryFallback string) LifecyclePolicy {
	policy := DefaultLifecyclePolicy()
	if TransitionPolicy(transition) == TransitionPolicyForwardOnly {
		policy.Transition = TransitionPolicyForwardOnly
	}
	if returnWindow > 0 {
		policy.ReturnWindow = returnWindow
	}
	if DeliveryFallback(deliveryFallback) == DeliveryFallbackStrict {
		policy.DeliveryFallback = DeliveryFallbackStrict
	}

	return policy
}

// StatusUpdate carries the admin status change and optional shipment details.
type StatusUpdate struct {
	Status         OrderStatus
	TrackingNumber string
	Carrier        string
}

// UpdateStatus applies an admin status change.
func (o *Order) UpdateStatus(update StatusUpdate, policy LifecyclePolicy, now time.Time) error {
	next := update.Status
	if !next.IsValid() {
		return domainerrors.ErrInvalidOrderStatus.WithDetails("status: " + next.String())
	}
	if next == OrderStatusCancelled {
		return domainerrors.ErrStatusRequiresCancel
	}
	if o.Status.IsFinal() {
		return domainerrors.ErrOrderStatusLocked.WithDetails("current status: " + o.Status.String())
	}
	if next == o.Status {
		return domainerrors.ErrOrderSameStatus
	}
	if policy.Transition == TransitionPolicyForwardOnly && next.Rank() < o.Status.Rank() {
		return domainerrors.ErrOrderBackwardTransition.WithDetails(o.Status.String() + " -> " + next.String())
	}

	o.Status = next
	if update.TrackingNumber != "" {
		o.TrackingNumber = update.TrackingNumber
	}
	if update.Carrier != "" {
		o.Carrier = update.Carrier
	}
	if next == OrderStatusDelivered {
		deliveredAt := now
		o.DeliveredAt = &deliveredAt
	}
	o.UpdatedAt = now

	return nil
}

// CanBeCancelledBy reports whether the given surface may cancel the order in its current status.
func (o *Order) CanBeCancelledBy(kind ActorKind) bool {
	switch o.Status {
	case OrderStatusCancelled, OrderStatusDelivered:
		return false
	case OrderStatusProcessing, OrderStatusShipped:
		return kind == ActorKindAdmin
	default:
		return true
	}
}

// Cancel moves the order to cancelled on behalf of an admin or the owning customer.
func (o *Order) Cancel(kind ActorKind, reason string, now time.Time) error {
	if !o.CanBeCancelledBy(kind) {
		return domainerrors.ErrOrderNotCancellable.WithDetails("current status: " + o.Status.String())
	}

	cancelledAt := now
	o.Status = OrderStatusCancelled
	o.CancellationReason = strings.TrimSpace(reason)
	o.CancelledBy = kind
	o.CancelledAt = &cancelledAt
	o.UpdatedAt = now

	return nil
}

// DeliveryTime returns when the order was delivered according to the policy.
func (o *Order) DeliveryTime(policy LifecyclePolicy) (time.Time, bool) {
	if o.DeliveredAt != nil {
		return *o.DeliveredAt, true
	}
	if policy.DeliveryFallback == DeliveryFallbackStrict || o.UpdatedAt.IsZero() {
		return time.Time{}, false
	}

	return o.UpdatedAt, true
}

// HasReturnExchange reports whether a return or exchange was ever requested.
func (o *Order) HasReturnExchange() bool {
	return o.ReturnExchange != nil && o.ReturnExchange.Status != ""
}

// CheckReturnEligibility reports why the order cannot take a return or exchange request, if it cannot.
func (o *Order) CheckReturnEligibility(policy LifecyclePolicy, now time.Time) error {
	if o.Status != OrderStatusDelivered {
		return domainerrors.ErrReturnNotEligible.WithDetails("current status: " + o.Status.String())
	}
	if o.HasReturnExchange() {
		return domainerrors.ErrReturnAlreadyRequested
	}

	deliveredAt, ok := o.DeliveryTime(policy)
	if !ok {
		return domainerrors.ErrReturnNotEligible.WithDetails("delivery time unknown")
	}
	window := policy.ReturnWindow
	if window <= 0 {
		window = DefaultReturnWindow
	}
	if now.Sub(deliveredAt) > window {
		return domainerrors.ErrReturnWindowExpired
	}

	return nil
}

// RequestReturnExchange opens the order's single return or exchange request.
func (o *Order) RequestReturnExchange(kind ReturnExchangeType, reason string, policy LifecyclePolicy, now time.Time) error {
	if !kind.IsValid() {
		return domainerrors.ErrInvalidReturnType
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domainerrors.ErrReturnReasonRequired
	}
	if err := o.CheckReturnEligibility(policy, now); err != nil {
		return err
	}

	o.ReturnExchange = &ReturnExchange{
		Type:        kind,
		Status:      ReturnExchangeStatusRequested,
		Reason:      reason,
		RequestedAt: now,
	}
	o.UpdatedAt = now

	return nil
}

// AdjudicateReturnExchange records the admin decision on a pending request.
func (o *Order) AdjudicateReturnExchange(decision ReturnExchangeStatus, notes string, now time.Time) error {
	if !decision.IsDecision() {
		return domainerrors.ErrInvalidReturnAction
	}
	if !o.HasReturnExchange() {
		return domainerrors.ErrReturnNotFound
	}
	if o.ReturnExchange.Status != ReturnExchangeStatusRequested {
		return domainerrors.ErrReturnNotPending.WithDetails("current status: " + string(o.ReturnExchange.Status))
	}

	processedAt := now
	o.ReturnExchange.Status = decision
	o.ReturnExchange.ProcessedAt = &processedAt
	o.ReturnExchange.AdminNotes = notes
	o.UpdatedAt = now

	return nil
}

// CompleteReturnExchange closes an approved request once goods are received or swapped.
func (o *Order) CompleteReturnExchange(notes string, now time.Time) error {
	if !o.HasReturnExchange() {
		return domainerrors.ErrReturnNotFound
	}
	if o.ReturnExchange.Status != ReturnExchangeStatusApproved {
		return domainerrors.ErrReturnNotApproved.WithDetails("current status: " + string(o.ReturnExchange.Status))
	}

	completedAt := now
	o.ReturnExchange.Status = ReturnExchangeStatusCompleted
	o.ReturnExchange.CompletedAt = &completedAt
	if notes = strings.TrimSpace(notes); notes != "" {
		if o.ReturnExchange.AdminNotes != "" {
			o.ReturnExchange.AdminNotes += "\n"
		}
		o.ReturnExchange.AdminNotes += notes
	}
	o.UpdatedAt = now

	return nil
}
