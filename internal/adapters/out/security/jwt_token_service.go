package security

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lytefood/internal/core/ports"
	"lytefood/internal/pkg/errs"
)

// JWTTokenService issues and validates HS256-signed access tokens.
type JWTTokenService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTTokenService creates a token service signing with the given secret.
// Tokens expire after the given duration.
func NewJWTTokenService(secret string, expiry time.Duration) JWTTokenService {
	return JWTTokenService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs a token carrying the user's id and email.
func (s JWTTokenService) Issue(claims ports.TokenClaims) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   strconv.FormatInt(claims.UserID, 10),
		"email": claims.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiry).Unix(),
	})

	return token.SignedString(s.secret)
}

// Parse validates the signature and expiry and returns the claims.
func (s JWTTokenService) Parse(tokenString string) (ports.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ports.TokenClaims{}, errs.NewNotAuthorizedErrorWithCause("parse token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ports.TokenClaims{}, errs.NewNotAuthorizedError("parse token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return ports.TokenClaims{}, errs.NewNotAuthorizedErrorWithCause("parse token", err)
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return ports.TokenClaims{}, errs.NewNotAuthorizedErrorWithCause("parse token", err)
	}

	email, _ := claims["email"].(string)

	return ports.TokenClaims{UserID: userID, Email: email}, nil
}

var _ ports.TokenService = JWTTokenService{}
