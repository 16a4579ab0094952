package auth

import (
	"fmt"
	"time"

	"mentor-chat/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the chat boundary reads out of a token: the resolved
// viewer identity. Issuing tokens belongs to the account system; the
// generator below exists for tools and tests.
type Claims struct {
	MemberID int64  `json:"member_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a specific viewer.
func GenerateToken(secret []byte, viewer domain.Viewer, duration time.Duration) (string, error) {
	claims := &Claims{
		MemberID: viewer.ID,
		Role:     string(viewer.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "mentor-chat",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ResolveViewer parses and validates a token and returns the viewer it
// carries. The role must be one of the four known roles; a token with an
// unknown role is rejected, not coerced.
func ResolveViewer(secret []byte, tokenString string) (domain.Viewer, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return domain.Viewer{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Viewer{}, jwt.ErrSignatureInvalid
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return domain.Viewer{}, fmt.Errorf("unknown role %q in token", claims.Role)
	}
	return domain.Viewer{ID: claims.MemberID, Role: role}, nil
}
