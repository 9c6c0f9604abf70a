package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const AccessTokenSecretEnv = "JWT_ACCESS_TOKEN_SECRET"

var (
	ErrEmptyHeader   = errors.New("empty Authorization header")
	ErrInvalidFormat = errors.New("invalid Authorization format")
	ErrNoSecret      = errors.New("JWT secret not configured")
	ErrMissingClaims = errors.New("token claims are missing required fields")
)

// Sign issues an HS256 token carrying data as claims and an exp claim.
func Sign(data map[string]interface{}, expiresIn time.Duration) (string, int64, error) {
	expiredAt := time.Now().Add(expiresIn).Unix()

	secret := os.Getenv(AccessTokenSecretEnv)
	if secret == "" {
		return "", 0, ErrNoSecret
	}

	claims := jwt.MapClaims{}
	for k, v := range data {
		claims[k] = v
	}
	claims["exp"] = expiredAt

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

func ParseToken(accessToken string, secretEnvKey string) (*jwt.Token, error) {
	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return nil, ErrNoSecret
	}

	return jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, ErrEmptyHeader
	}

	accessToken, found := strings.CutPrefix(header, "Bearer ")
	accessToken = strings.TrimSpace(accessToken)
	if !found || accessToken == "" {
		return nil, ErrInvalidFormat
	}

	return ParseToken(accessToken, secretEnvKey)
}

// UserFromClaims reads the login data written by the auth service.
func UserFromClaims(token *jwt.Token) (entity.UserLoginData, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserLoginData{}, ErrMissingClaims
	}

	id, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)
	if id == "" || email == "" {
		return entity.UserLoginData{}, ErrMissingClaims
	}

	return entity.UserLoginData{ID: id, Email: email, Username: username}, nil
}

func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	user, ok := c.Locals("user").(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
