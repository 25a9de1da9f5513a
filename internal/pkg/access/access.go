// Package access evaluates an ordered list of named permission predicates.
// Each predicate may allow, deny, or abstain; the first non-abstain decision
// wins and a chain where every predicate abstains denies.
package access

import "recipehub/internal/domain"

type Decision int

const (
	Abstain Decision = iota
	Allow
	Deny
)

type Predicate[T any] struct {
	Name  string
	Check func(actor *domain.User, obj T) Decision
}

func Evaluate[T any](actor *domain.User, obj T, chain ...Predicate[T]) bool {
	for _, p := range chain {
		switch p.Check(actor, obj) {
		case Allow:
			return true
		case Deny:
			return false
		}
	}
	return false
}
