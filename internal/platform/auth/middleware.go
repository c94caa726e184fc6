package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const doctorClaimsKey = "doctor_claims"

// RequireDoctor validates the bearer token on doctor-only endpoints and puts
// the doctor claims on the echo context. Missing or invalid tokens get a 401;
// the workflow treats that as "no doctor logged in" and routes back to login.
func RequireDoctor(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(doctorClaimsKey, claims)
			return next(c)
		}
	}
}

// DoctorFromContext returns the doctor claims set by RequireDoctor, or nil.
func DoctorFromContext(c echo.Context) *DoctorClaims {
	claims, _ := c.Get(doctorClaimsKey).(*DoctorClaims)
	return claims
}
