package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

const AdminPassphraseHeader = "X-Admin-Passphrase"

// AdminAuth gates admin-only routes behind the shared passphrase. An
// empty configured passphrase locks the admin surface entirely.
func AdminAuth(passphrase string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		got := c.GetHeader(AdminPassphraseHeader)
		if passphrase == "" || subtle.ConstantTimeCompare([]byte(got), []byte(passphrase)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrBadCredentials.Error()},
			)
			return
		}
		c.Next()
	}
}
