package middleware

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	ContextAdminUser = "adminUser"

	AdminRealm    = `Basic realm="Admin Area"`
	AdminTokenTTL = 12 * time.Hour
)

// CheckAdminCredentials compares against ADMIN_PASS_HASH when set,
// otherwise against ADMIN_PASS. An unset password never matches.
func CheckAdminCredentials(cfg *config.Config, user, pass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUser)) == 1

	var passOK bool
	switch {
	case cfg.AdminPassHash != "":
		passOK = bcrypt.CompareHashAndPassword([]byte(cfg.AdminPassHash), []byte(pass)) == nil
	case cfg.AdminPass != "":
		passOK = subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.AdminPass)) == 1
	}

	return userOK && passOK
}

// IssueAdminToken signs an HS256 session token for user.
func IssueAdminToken(cfg *config.Config, user string, now time.Time) (string, time.Time, error) {
	if !signingKeyUsable(cfg) {
		return "", time.Time{}, errors.New("admin tokens disabled: JWT_SECRET is not set")
	}
	exp := now.Add(AdminTokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   user,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// signingKeyUsable rejects an empty or placeholder secret; Bearer auth is
// off until a real one is configured.
func signingKeyUsable(cfg *config.Config) bool {
	s := strings.TrimSpace(cfg.JWTSecret)
	return s != "" && s != "changeme"
}

func parseAdminToken(cfg *config.Config, raw string) (string, error) {
	if !signingKeyUsable(cfg) {
		return "", errors.New("invalid_token")
	}
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errors.New("invalid_token")
	}
	if claims.Subject != cfg.AdminUser {
		return "", errors.New("invalid_token_subject")
	}
	return claims.Subject, nil
}

// AdminAuth gates the admin pages and API. It accepts HTTP Basic
// credentials or a Bearer token from the session endpoint.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if scheme, raw, ok := strings.Cut(authHeader, " "); ok && strings.EqualFold(scheme, "Bearer") {
			user, err := parseAdminToken(cfg, strings.TrimSpace(raw))
			if err != nil {
				unauthorized(c, err.Error())
				return
			}
			c.Set(ContextAdminUser, user)
			c.Next()
			return
		}

		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, "missing_authorization_header")
			return
		}
		if !CheckAdminCredentials(cfg, user, pass) {
			unauthorized(c, "invalid_credentials")
			return
		}

		c.Set(ContextAdminUser, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, code string) {
	c.Header("WWW-Authenticate", AdminRealm)
	httperr.Unauthorized(c, code, "Authentication required.")
	c.Abort()
}

// NoStore marks admin responses as uncacheable.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

