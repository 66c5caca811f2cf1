// Package access holds the authenticated principal and the capability guards
// composed in front of every mutating operation. Guards are pure functions of
// (principal, resource); callers load the resource first so a missing entity
// surfaces as not-found rather than forbidden.
package access

import (
	"context"

	"github.com/akimovv/SessionBooker/internal/domain"
)

// Principal is the already-authenticated caller. Identity and role come from
// the upstream auth proxy; this service never inspects credentials.
type Principal struct {
	ID   int64
	Role domain.Role
}

func (p Principal) IsFacilitator() bool {
	return p.Role == domain.RoleFacilitator
}

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

func RequireFacilitator(p Principal) error {
	if !p.IsFacilitator() {
		return domain.ErrFacilitatorOnly
	}
	return nil
}

func RequireSessionOwner(p Principal, s *domain.Session) error {
	if s.FacilitatorID != p.ID {
		return domain.ErrNotSessionOwner
	}
	return nil
}

func RequireBookingOwner(p Principal, b *domain.Booking) error {
	if b.UserID != p.ID {
		return domain.ErrNotBookingOwner
	}
	return nil
}
