package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/iliyamo/vitahires/internal/model" // model defines the closed Role type
)

// RequireRole returns a middleware function that enforces that the
// authenticated user holds one of the specified roles.  The allowed set
// is typed: each protected route group declares its required role as part
// of its registration rather than as an inline string check inside the
// handler.  It assumes a previous middleware has extracted the role into
// the context under the key "role".  A missing or mismatched role aborts
// the request with 403 Forbidden; no handler state is touched.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    // Build a set of allowed roles for constant-time lookups.
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // The role claim is stored as a string by JWTAuth.  Parse it
            // through the closed enum so junk claims are indistinguishable
            // from missing ones.
            v, _ := c.Get("role").(string)
            role, err := model.ParseRole(v)
            if err != nil || !allowed[role] {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
