package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/trananh2004/shopfront/internal/common"
)

// Claims carries the registered claims plus the profile id the session
// belongs to.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// NewMarker issues the session marker: an HS256 token carrying the profile
// id, signed with a per-process random key. The marker only tags the running
// session; the store itself does no auth.
func NewMarker(userID string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// UserIDFromMarker verifies a marker and returns the profile id inside it.
func UserIDFromMarker(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
