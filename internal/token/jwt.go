package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/motodeal/motodeal-server/internal/model"
)

// Claims represents JWT claims carrying the identity token view. The custom
// field names mirror the token view exactly and must not change.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"_id"`
	Role   string    `json:"role"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const tokenTTL = 5 * time.Hour

// Generate signs the token view into an opaque identifier for downstream
// authorization. Nothing beyond id and role is embedded.
func (j *JWT) Generate(view model.TokenView) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: view.ID,
		Role:   view.Role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a signed identifier and extracts the token view.
func (j *JWT) Parse(tokenString string) (model.TokenView, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenView{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return model.TokenView{}, fmt.Errorf("token is invalid")
	}
	return model.TokenView{ID: claims.UserID, Role: claims.Role}, nil
}
