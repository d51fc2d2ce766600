package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"catalogapi/utils"
)

// ClaimsKey is where verified claims are stored on the request context.
const ClaimsKey = "claims"

// AuthRequired gates requests behind the identity provider. Both a bare
// token and a "Bearer <token>" header are accepted; Go canonicalizes
// header keys, so the lower-case "authorization" spelling is covered by
// the same lookup.
//
// Failed or missing credentials answer 200 with is_success=false and a
// message in data. Clients inspect the body, not the status code.
func AuthRequired(verifier utils.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorization := c.GetHeader("Authorization")
		if authorization == "" {
			utils.Respond(c, false, http.StatusOK, "User Not Authorize", nil, "")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authorization, "Bearer ")
		claims, err := verifier.Verify(token)
		if err != nil {
			utils.Respond(c, false, http.StatusOK, "Token has expired/Invalid Token", nil, "")
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
