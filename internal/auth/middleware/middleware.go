package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mind-engage/eduport/internal/rbac"
)

const tokenTTL = 8 * time.Hour

var ErrBadToken = errors.New("invalid token")

type AuthService struct{ hmac []byte }

func NewAuthService(secret string) *AuthService { return &AuthService{hmac: []byte(secret)} }

type Claims struct {
	Sub  string `json:"sub"`
	Tier string `json:"tier"`
	jwt.RegisteredClaims
}

func (a *AuthService) IssueJWT(sub, tier string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Sub:  sub,
		Tier: tier,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "eduport",
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.hmac)
}

func (a *AuthService) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || c.Sub == "" {
		return nil, ErrBadToken
	}
	return c, nil
}

// LoginConfig selects who may log in. Admin credentials are checked with
// bcrypt; any other username gets a dev token only when AllowDev is set.
type LoginConfig struct {
	AdminUser     string
	AdminPassHash string
	AllowDev      bool
}

// POST /auth/login  { "username": "...", "password": "...", "tier": "free|pro|enterprise" }
func LoginHandler(a *AuthService, lc LoginConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Tier     string `json:"tier"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		var tier string
		switch {
		case req.Username == lc.AdminUser:
			if bcrypt.CompareHashAndPassword([]byte(lc.AdminPassHash), []byte(req.Password)) != nil {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			tier = rbac.TierAdmin
		case lc.AllowDev:
			tier = req.Tier
			if tier == "" {
				tier = rbac.TierFree
			}
			if tier == rbac.TierAdmin || tier == rbac.TierAnonymous || !rbac.KnownTier(tier) {
				http.Error(w, "invalid tier", http.StatusBadRequest)
				return
			}
		default:
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		tok, err := a.IssueJWT(req.Username, tier)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok, "tier": tier})
	}
}

func bearer(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(h, "Bearer "), true
}

func withClaims(r *http.Request, c *Claims) *http.Request {
	ctx := WithSubject(r.Context(), c.Sub)
	ctx = rbac.WithTier(ctx, c.Tier)
	return r.WithContext(ctx)
}

// JWTMiddleware rejects requests without a valid bearer token.
func JWTMiddleware(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := bearer(r)
			if !ok {
				http.Error(w, "missing bearer", http.StatusUnauthorized)
				return
			}
			c, err := a.Parse(tok)
			if err != nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, withClaims(r, c))
		})
	}
}

// OptionalJWT attaches the caller when a valid token is present and lets
// everyone else through as anonymous. A malformed token is still rejected.
func OptionalJWT(a *AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok, ok := bearer(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			c, err := a.Parse(tok)
			if err != nil {
				http.Error(w, "bad token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, withClaims(r, c))
		})
	}
}
