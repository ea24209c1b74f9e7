package statemachine

import (
	"errors"

	"dine-in-api/models"
)

// Transition defines a valid status change and the staff action that drives it
type Transition struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Action string // "confirm", "serve", "close"
}

// validTransitions is the authoritative state machine definition. The
// lifecycle is linear and forward-only: no cancel, no backward moves.
var validTransitions = []Transition{
	// Staff confirms the order and a waiter takes the table
	{From: models.StatusPending, To: models.StatusReady, Action: "confirm"},
	// Staff marks the order served; service time is recorded here
	{From: models.StatusReady, To: models.StatusCompleted, Action: "serve"},
	// Closing an order completes it whatever its progress; already-completed
	// orders close as a no-op for idempotence
	{From: models.StatusPending, To: models.StatusCompleted, Action: "close"},
	{From: models.StatusReady, To: models.StatusCompleted, Action: "close"},
	{From: models.StatusCompleted, To: models.StatusCompleted, Action: "close"},
}

type transitionKey struct {
	From   models.OrderStatus
	To     models.OrderStatus
	Action string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Action}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether a staff action may move an order between two states
func CanTransition(from, to models.OrderStatus, action string) error {
	if transitionMap[transitionKey{From: from, To: to, Action: action}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for action '" + action + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// CheckTransition guards a transition on a concrete order. A closed table
// blocks every further status change; this is a guard, not a transition.
func CheckTransition(order *models.Order, to models.OrderStatus, action string) error {
	if order.TableClosed {
		return errors.New("table " + order.TableNumber + " is closed; order can no longer change status")
	}
	return CanTransition(order.Status, to, action)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
