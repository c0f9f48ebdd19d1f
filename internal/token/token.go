package token

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie that carries the signed identity token.
const CookieName = "token"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies the identity token carried in an
// HTTP-only cookie. There is no revocation list: a leaked token stays
// valid until it expires.
type Service struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewService(secret string, secure bool) *Service {
	return &Service{secret: []byte(secret), ttl: time.Hour, secure: secure}
}

func (s *Service) Sign(email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse checks signature and expiry. HS256 only.
func (s *Service) Parse(tokenStr string) (*Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// Cookie wraps a signed token for the browser. Cross-site cookies need
// SameSite=None, which browsers only accept together with Secure, so
// both are tied to the production flag.
func (s *Service) Cookie(tokenStr string) *fiber.Cookie {
	c := &fiber.Cookie{
		Name:     CookieName,
		Value:    tokenStr,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if s.secure {
		c.Secure = true
		c.SameSite = fiber.CookieSameSiteNoneMode
	}
	return c
}

// ClearCookie expires the identity cookie immediately.
func (s *Service) ClearCookie() *fiber.Cookie {
	c := &fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if s.secure {
		c.Secure = true
		c.SameSite = fiber.CookieSameSiteNoneMode
	}
	return c
}
