// Package sim implements the turn-based lane-runner simulation: a player
// position inside a 3×3 cross-section, a consumable queue of upcoming
// obstacle slices, and a move transition that resolves collision against the
// current slice while scoring a one-slice lookahead.
//
// The package is deliberately dependency-free so the rules stay pure and
// testable; rendering, input, and persistence live in the platform layers.
package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Action is one of the five moves a player can make on a turn.
type Action int

// The five moves, in fixed enumeration order. The order is also the scan
// order of the lookahead search in Reward; the result only depends on
// whether any safe follow-up exists, not which one is found first.
const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionDuck
	ActionStay
)

// ErrUnknownAction is returned by ParseAction for tokens outside the move
// vocabulary. Callers are expected to re-prompt; the token never reaches
// the state machine.
var ErrUnknownAction = errors.New("sim: unknown action")

// Actions returns the move vocabulary in its fixed enumeration order.
func Actions() [5]Action {
	return [5]Action{ActionLeft, ActionRight, ActionJump, ActionDuck, ActionStay}
}

// Delta returns the positional effect of the action as (row, column) change.
// Rows grow downward: jumping decreases the row, ducking increases it.
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	case ActionJump:
		return -1, 0
	case ActionDuck:
		return 1, 0
	default: // ActionStay
		return 0, 0
	}
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionDuck:
		return "duck"
	case ActionStay:
		return "stay"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction maps an input token to an Action. Accepted tokens are the
// full move names and their first letters, case-insensitive.
func ParseAction(token string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "l", "left":
		return ActionLeft, nil
	case "r", "right":
		return ActionRight, nil
	case "j", "jump":
		return ActionJump, nil
	case "d", "duck":
		return ActionDuck, nil
	case "s", "stay":
		return ActionStay, nil
	default:
		return ActionStay, fmt.Errorf("%w: %q", ErrUnknownAction, token)
	}
}
