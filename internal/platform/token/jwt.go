package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "riskdesk/pkg/domain"
	dErrors "riskdesk/pkg/domain-errors"
)

// Claims represents the JWT claims for access tokens issued to support-desk
// callers. The subject carries the customer id.
type Claims struct {
	CustomerID string `json:"customer_id"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation. HS256 only; asymmetric keys
// are out of scope for a single-service deployment.
type Service struct {
	signingKey []byte
	issuer     string
}

func NewService(signingKey, issuer string) *Service {
	return &Service{signingKey: []byte(signingKey), issuer: issuer}
}

// Generate issues a signed access token for the given customer.
func (s *Service) Generate(customerID id.CustomerID, expiresIn time.Duration) (string, error) {
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		CustomerID: customerID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return newToken.SignedString(s.signingKey)
}

// Validate parses and verifies a token, returning the customer it was issued
// for.
//
// Errors: CodeUnauthorized for expired, malformed, or wrongly-signed tokens.
func (s *Service) Validate(tokenString string) (id.CustomerID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return 0, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	customerID, err := id.ParseCustomerID(claims.CustomerID)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "token carries no valid customer id")
	}
	return customerID, nil
}
