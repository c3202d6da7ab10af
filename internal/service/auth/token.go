package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vladislavdragonenkov/salesops/internal/domain"
)

// DefaultTokenTTL — срок жизни выданного токена.
const DefaultTokenTTL = 24 * time.Hour

// Claims — полезная нагрузка токена. Помимо стандартных полей токен несёт
// идентификатор и видимые реквизиты продавца.
type Claims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Firstname string `json:"firstname"`
	jwt.RegisteredClaims
}

// UserID возвращает идентификатор продавца из токена.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenIssuer выпускает и проверяет подписанные учётные данные (HS256).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer создаёт issuer с общим секретом. ttl <= 0 заменяется
// значением по умолчанию.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue выпускает токен для пользователя со сроком действия ttl.
func (i *TokenIssuer) Issue(user domain.User) (string, error) {
	if len(i.secret) == 0 {
		return "", fmt.Errorf("token secret is not configured")
	}

	now := i.now().UTC()
	claims := Claims{
		Email:     user.Email,
		Name:      user.Name,
		Firstname: user.Firstname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify разбирает и проверяет токен. Любой дефект подписи, формата или
// срока действия схлопывается в ErrUnauthenticated.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthenticated, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	return claims, nil
}
