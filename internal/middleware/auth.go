package middleware

import (
	"net/http"
	"strconv"

	"github.com/akimovv/SessionBooker/internal/access"
	"github.com/akimovv/SessionBooker/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Auth consumes the identity headers set by the authenticating proxy and puts
// the principal on the request context. Requests without a valid identity are
// rejected before any handler runs.
func Auth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id, err := strconv.ParseInt(c.GetHeader(headerUserID), 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		role := domain.Role(c.GetHeader(headerUserRole))
		if !role.Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "authentication required"},
			)
			return
		}

		p := access.Principal{ID: id, Role: role}
		c.Request = c.Request.WithContext(access.WithPrincipal(c.Request.Context(), p))

		c.Next()
	}
}
