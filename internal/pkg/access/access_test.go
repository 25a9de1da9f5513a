package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recipehub/internal/domain"
)

func allowAll(*domain.User, string) Decision   { return Allow }
func denyAll(*domain.User, string) Decision    { return Deny }
func abstainAll(*domain.User, string) Decision { return Abstain }

func TestEvaluate_FirstDecisionWins(t *testing.T) {
	actor := &domain.User{ID: 1}

	ok := Evaluate(actor, "obj",
		Predicate[string]{Name: "deny", Check: denyAll},
		Predicate[string]{Name: "allow", Check: allowAll},
	)
	assert.False(t, ok)

	ok = Evaluate(actor, "obj",
		Predicate[string]{Name: "allow", Check: allowAll},
		Predicate[string]{Name: "deny", Check: denyAll},
	)
	assert.True(t, ok)
}

func TestEvaluate_AbstainFallsThrough(t *testing.T) {
	ok := Evaluate(nil, "obj",
		Predicate[string]{Name: "skip", Check: abstainAll},
		Predicate[string]{Name: "allow", Check: allowAll},
	)
	assert.True(t, ok)
}

// A chain where everything abstains denies by default, as does an empty chain.
func TestEvaluate_DefaultDeny(t *testing.T) {
	ok := Evaluate(nil, "obj",
		Predicate[string]{Name: "skip", Check: abstainAll},
	)
	assert.False(t, ok)

	assert.False(t, Evaluate[string](nil, "obj"))
}
