package rbac

import (
	"context"
	"strings"
)

type Checker struct {
	TierPermissions map[string][]string
}

func NewChecker(tp map[string][]string) *Checker {
	if tp == nil {
		tp = TierPermissions
	}
	return &Checker{TierPermissions: tp}
}

func (c *Checker) Has(tier, perm string) bool {
	perms, ok := c.TierPermissions[tier]
	if !ok {
		return false
	}
	for _, p := range perms {
		if matchPerm(p, perm) {
			return true
		}
	}
	return false
}

func (c *Checker) Any(tier string, perms ...string) bool {
	for _, p := range perms {
		if c.Has(tier, p) {
			return true
		}
	}
	return false
}

func matchPerm(pattern, perm string) bool {
	if pattern == "*" || pattern == perm {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(perm, strings.TrimSuffix(pattern, "*"))
	}
	return false
}

// ---- tier in context ----

type ctxKey struct{}

var ctxKeyTier = ctxKey{}

func WithTier(ctx context.Context, tier string) context.Context {
	return context.WithValue(ctx, ctxKeyTier, tier)
}

// TierFromContext falls back to TierAnonymous.
func TierFromContext(ctx context.Context) string {
	if v := ctx.Value(ctxKeyTier); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return TierAnonymous
}
