package service

import (
	"fmt"
	"time"

	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	claimTransactionID = "transactionId"
	claimOrderID       = "orderId"
	claimUserID        = "userId"
)

// JWTTokenService implements ports.TokenIssuer using HS256 JWT.
type JWTTokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewJWTTokenService creates a new JWT token service.
func NewJWTTokenService(secret string, issuer string) *JWTTokenService {
	return &JWTTokenService{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// CreateToken signs a token scoped to one transaction for the given audience.
func (s *JWTTokenService) CreateToken(claims ports.TokenClaims, audience string, duration time.Duration) (string, error) {
	now := s.now()
	mc := jwt.MapClaims{
		"jti":              uuid.NewString(),
		"iat":              now.Unix(),
		"exp":              now.Add(duration).Unix(),
		"iss":              s.issuer,
		"aud":              audience,
		claimTransactionID: claims.TransactionID.String(),
	}
	if claims.OrderID != nil {
		mc[claimOrderID] = *claims.OrderID
	}
	if claims.UserID != nil {
		mc[claimUserID] = *claims.UserID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and checks signature, expiry, issuer and audience.
func (s *JWTTokenService) Validate(tokenString string, audience string) (*ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithAudience(audience),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	txID, _ := claims[claimTransactionID].(string)
	if txID == "" {
		return nil, fmt.Errorf("missing %s claim", claimTransactionID)
	}

	result := &ports.TokenClaims{TransactionID: domain.TransactionID(txID)}
	if v, ok := claims[claimOrderID].(string); ok {
		result.OrderID = &v
	}
	if v, ok := claims[claimUserID].(string); ok {
		result.UserID = &v
	}
	return result, nil
}
