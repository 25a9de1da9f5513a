package recipe

import (
	"recipehub/internal/domain"
	"recipehub/internal/pkg/access"
)

// Mutation permissions are an ordered predicate chain with a default deny:
// admins may touch anything, authors may touch their own recipes, everyone
// else falls through to the deny.
var mutateChain = []access.Predicate[*domain.Recipe]{
	{
		Name: "admin_override",
		Check: func(actor *domain.User, _ *domain.Recipe) access.Decision {
			if actor != nil && actor.IsAdmin {
				return access.Allow
			}
			return access.Abstain
		},
	},
	{
		Name: "author_only",
		Check: func(actor *domain.User, r *domain.Recipe) access.Decision {
			if actor != nil && actor.ID == r.AuthorID {
				return access.Allow
			}
			return access.Abstain
		},
	},
}

func canMutate(actor *domain.User, r *domain.Recipe) bool {
	return access.Evaluate(actor, r, mutateChain...)
}
