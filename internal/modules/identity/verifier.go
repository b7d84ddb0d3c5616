package identity

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

// SessionCookie is the cookie the identity provider sets for browser sessions.
const SessionCookie = "__session"

// Config selects how session tokens are verified. PublicKeyPEM (RS256) takes
// precedence over HMACSecret (HS256).
type Config struct {
	PublicKeyPEM string
	HMACSecret   string
	Issuer       string
}

// Verifier validates session tokens and extracts the user id from the subject claim.
type Verifier struct {
	keyFunc jwt.Keyfunc
	issuer  string
}

// NewVerifier creates a verifier for the configured key.
func NewVerifier(cfg Config) (*Verifier, error) {
	switch {
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse identity public key: %w", err)
		}
		return &Verifier{
			issuer: cfg.Issuer,
			keyFunc: func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return key, nil
			},
		}, nil
	case cfg.HMACSecret != "":
		secret := []byte(cfg.HMACSecret)
		return &Verifier{
			issuer: cfg.Issuer,
			keyFunc: func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return secret, nil
			},
		}, nil
	default:
		return nil, errors.New("identity: no verification key configured")
	}
}

// Verify parses tokenString and returns the user id it was issued for.
func (v *Verifier) Verify(tokenString string) (string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid session token")
	}
	if v.issuer != "" && !claims.VerifyIssuer(v.issuer, true) {
		return "", fmt.Errorf("unexpected token issuer %q", claims.Issuer)
	}
	if claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}
	return claims.Subject, nil
}

// Middleware attaches the caller's user id to the request context when a
// valid token is present. Requests without one continue anonymously; each
// handler decides whether it needs an identity.
func (v *Verifier) Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := v.Verify(token)
			if err != nil {
				logger.Debug("session token rejected", zap.String("path", r.URL.Path), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// KeyFunc charges rate limits to the user id when present, else the client address.
func KeyFunc(r *http.Request) string {
	if id := UserID(r.Context()); id != "" {
		return "user:" + id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "addr:" + host
}
