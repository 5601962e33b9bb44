package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used in getUserID
    "strconv" // strconv converts strings to numeric types
    "time"    // time bounds database calls

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/iliyamo/vitahires/internal/model" // model defines the Role type
)

// dbTimeout bounds every handler-initiated database call.
const dbTimeout = 5 * time.Second

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64: // JWT numeric claims decode as float64
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// currentRole extracts the role claim from context and parses it through
// the closed enum. The second return is false for guests and junk claims.
func currentRole(c echo.Context) (model.Role, bool) {
    s, _ := c.Get("role").(string)
    r, err := model.ParseRole(s)
    return r, err == nil
}
