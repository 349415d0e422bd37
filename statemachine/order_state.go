package statemachine

import (
	"errors"
	"strings"

	"restaurant-foh/models"
)

// Transition defines a forward status change and which role normally performs it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Actor models.UserRole    `json:"actor"`
}

// forwardTransitions is the nominal lifecycle of an order. The reducer does
// not enforce it; the HTTP layer does when strict transitions are enabled.
var forwardTransitions = []Transition{
	// Customer places the draft from the cart
	{From: models.StatusDraft, To: models.StatusConfirmed, Actor: models.RoleCustomer},
	// Kitchen picks the ticket up
	{From: models.StatusConfirmed, To: models.StatusPreparing, Actor: models.RoleKitchen},
	// Kitchen marks it ready
	{From: models.StatusPreparing, To: models.StatusReady, Actor: models.RoleKitchen},
	// Reception hands it over to the table
	{From: models.StatusReady, To: models.StatusDelivered, Actor: models.RoleReception},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range forwardTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ErrInvalidTransition is wrapped by CanTransition failures.
var ErrInvalidTransition = errors.New("invalid transition")

// ValidTransitionsFrom returns all forward next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range forwardTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given role can move an order from one state to
// another. Admin may take any forward step.
func CanTransition(from, to models.OrderStatus, actor models.UserRole) error {
	if actor == models.RoleAdmin {
		for _, next := range ValidTransitionsFrom(from) {
			if next == to {
				return nil
			}
		}
	} else if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return &TransitionError{From: from, To: to, Actor: actor}
}

// TransitionError describes a rejected status change.
type TransitionError struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor models.UserRole
}

func (e *TransitionError) Error() string {
	return "invalid transition: " + string(e.From) + " → " + string(e.To) +
		" is not allowed for actor '" + string(e.Actor) + "'. " +
		"Valid transitions from " + string(e.From) + " are: " + describeValidFrom(e.From)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full lifecycle for documentation
func GetAllTransitions() []Transition {
	return append([]Transition(nil), forwardTransitions...)
}
