package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/account"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// Action names the path through which a status change is requested. The same
// target status can mean different things on different paths: cancelling
// through the cancel endpoint restocks, cancelling through the admin status
// override does not.
type Action int

const (
	ActionCancel Action = iota + 1
	ActionAssignRider
	ActionRecordDelivery
	ActionOverride
)

func (a Action) String() string {
	switch a {
	case ActionCancel:
		return "cancel"
	case ActionAssignRider:
		return "assign_rider"
	case ActionRecordDelivery:
		return "record_delivery"
	case ActionOverride:
		return "override"
	default:
		return "unknown"
	}
}

// InventoryEffect tells the caller what to do with the reserved stock.
type InventoryEffect int

const (
	InventoryUntouched InventoryEffect = iota
	InventoryRestock
)

// Recipient tells the caller whom to notify.
type Recipient int

const (
	NotifyNobody Recipient = iota
	NotifyCustomer
	NotifyRider
)

// TransitionRequest is what an actor asks for.
type TransitionRequest struct {
	Action Action

	// Target is the requested status for ActionRecordDelivery and ActionOverride.
	Target order.Status

	// Rider is the user to assign for ActionAssignRider, nil when the
	// referenced user does not exist.
	Rider *account.User
}

// Transition is the decision for a request: the status change and the side
// effects the caller must run after persisting it.
type Transition struct {
	Action    Action
	From      order.Status
	To        order.Status
	Inventory InventoryEffect
	Notify    notification.Kind
	Recipient Recipient

	// Changed is false for an override to the current status.
	Changed bool

	// SkipsRestock marks admin overrides to cancelled: stock reserved by the
	// order stays reserved.
	SkipsRestock bool
}

// OrderLifecycle decides which actor may move an order along which path.
//
// Transition table:
//
//	path            from            to                       actor
//	cancel          pending|paid    cancelled                owning customer, admin
//	assign rider    paid            shipped                  admin, rider must have role rider
//	record delivery shipped         delivered|undelivered    the assigned rider
//	override        any             any                      admin
//
// Role checks go through AccessGate; ownership and assignment checks are made
// here using the actor identity.
type OrderLifecycle struct {
	gate AccessGate
}

func NewOrderLifecycle(gate AccessGate) OrderLifecycle {
	return OrderLifecycle{gate: gate}
}

// Decide evaluates req against o without mutating anything.
//
// Returns:
//   - the Transition to apply
//   - UnauthenticatedError or ForbiddenError when the actor may not use the path
//   - ObjectNotFoundError when a rider addresses an order not assigned to them
//   - ValueIsInvalidError for an unusable target status or rider
//   - InvalidTransitionError when the current status does not allow the move
func (l OrderLifecycle) Decide(o *order.Order, actor *account.Actor, req TransitionRequest) (Transition, error) {
	if err := o.Validate(); err != nil {
		return Transition{}, err
	}

	switch req.Action {
	case ActionCancel:
		return l.decideCancel(o, actor)
	case ActionAssignRider:
		return l.decideAssignRider(o, actor, req.Rider)
	case ActionRecordDelivery:
		return l.decideRecordDelivery(o, actor, req.Target)
	case ActionOverride:
		return l.decideOverride(o, actor, req.Target)
	default:
		return Transition{}, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unsupported action %d", req.Action))
	}
}

// Apply mutates o according to a transition returned by Decide.
func (l OrderLifecycle) Apply(o *order.Order, t Transition, req TransitionRequest, now time.Time) error {
	switch t.Action {
	case ActionCancel:
		return o.Cancel(now)
	case ActionAssignRider:
		return o.AssignRider(req.Rider.ID(), now)
	case ActionRecordDelivery:
		return o.RecordDeliveryAttempt(t.To, now)
	case ActionOverride:
		_, err := o.Override(t.To, now)
		return err
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unsupported action %d", t.Action))
	}
}

// Transition decides and applies in one step.
func (l OrderLifecycle) Transition(
	o *order.Order,
	actor *account.Actor,
	req TransitionRequest,
	now time.Time,
) (Transition, error) {
	t, err := l.Decide(o, actor, req)
	if err != nil {
		return Transition{}, err
	}
	if !t.Changed {
		return t, nil
	}
	if err := l.Apply(o, t, req, now); err != nil {
		return Transition{}, err
	}
	return t, nil
}

func (l OrderLifecycle) decideCancel(o *order.Order, actor *account.Actor) (Transition, error) {
	if err := l.gate.Authorize(actor, account.RoleCustomer, account.RoleAdmin); err != nil {
		return Transition{}, err
	}
	if actor.Is(account.RoleCustomer) && !o.IsOwnedBy(actor.ID) {
		return Transition{}, errs.NewForbiddenError("order belongs to another customer")
	}

	to, err := o.Status().Cancel()
	if err != nil {
		return Transition{}, err
	}

	return Transition{
		Action:    ActionCancel,
		From:      o.Status(),
		To:        to,
		Inventory: InventoryRestock,
		Notify:    notification.OrderCancelled,
		Recipient: NotifyCustomer,
		Changed:   true,
	}, nil
}

func (l OrderLifecycle) decideAssignRider(o *order.Order, actor *account.Actor, rider *account.User) (Transition, error) {
	if err := l.gate.Authorize(actor, account.RoleAdmin); err != nil {
		return Transition{}, err
	}

	to, err := o.Status().Ship()
	if err != nil {
		return Transition{}, err
	}

	if err := rider.Validate(); err != nil {
		return Transition{}, errs.NewValueIsInvalidErrorWithCause("riderId", fmt.Errorf("rider does not exist"))
	}
	if rider.Role() != account.RoleRider {
		return Transition{}, errs.NewValueIsInvalidErrorWithCause("riderId",
			fmt.Errorf("user %s has role %s, expected rider", rider.ID(), rider.Role()))
	}

	return Transition{
		Action:    ActionAssignRider,
		From:      o.Status(),
		To:        to,
		Notify:    notification.OrderShipped,
		Recipient: NotifyRider,
		Changed:   true,
	}, nil
}

func (l OrderLifecycle) decideRecordDelivery(o *order.Order, actor *account.Actor, target order.Status) (Transition, error) {
	if err := l.gate.Authorize(actor, account.RoleRider); err != nil {
		return Transition{}, err
	}
	if !o.IsAssignedTo(actor.ID) {
		return Transition{}, errs.NewObjectNotFoundError("order", o.ID().String())
	}

	to, err := o.Status().RecordDeliveryAttempt(target)
	if err != nil {
		return Transition{}, err
	}

	kind := notification.OrderDelivered
	if to == order.Undelivered {
		kind = notification.OrderUndelivered
	}

	return Transition{
		Action:    ActionRecordDelivery,
		From:      o.Status(),
		To:        to,
		Notify:    kind,
		Recipient: NotifyCustomer,
		Changed:   true,
	}, nil
}

func (l OrderLifecycle) decideOverride(o *order.Order, actor *account.Actor, target order.Status) (Transition, error) {
	if err := l.gate.Authorize(actor, account.RoleAdmin); err != nil {
		return Transition{}, err
	}
	if err := target.Validate(); err != nil {
		return Transition{}, err
	}

	from := o.Status()
	if target == from {
		return Transition{Action: ActionOverride, From: from, To: target}, nil
	}
	if target.RequiresRider() && o.Rider() == nil {
		return Transition{}, errs.NewInvalidTransitionErrorWithMessage(
			from.String(),
			target.String(),
			fmt.Sprintf("Cannot set order status to %s without an assigned rider", target),
		)
	}

	return Transition{
		Action:       ActionOverride,
		From:         from,
		To:           target,
		Inventory:    InventoryUntouched,
		Notify:       notification.OrderStatusOverridden,
		Recipient:    NotifyCustomer,
		Changed:      true,
		SkipsRestock: target == order.Cancelled,
	}, nil
}
