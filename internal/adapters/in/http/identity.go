package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"freightflow/internal/core/domain/model/actor"
	"freightflow/internal/core/domain/model/kernel"
)

// actorContextKey is where the identity middleware stores the resolved actor
// on the echo context.
const actorContextKey = "freightflow.actor"

// IdentityMiddleware authenticates the bearer token and resolves the caller
// into an actor. The token carries "sub" (the subject UUID) and "role"
// ("shipper" or "admin") claims signed with HMAC.
func IdentityMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			act, err := resolveActor(tokenString, secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Invalid token",
				})
			}

			ctx.Set(actorContextKey, act)
			return next(ctx)
		}
	}
}

func resolveActor(tokenString string, secret []byte) (actor.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return actor.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return actor.Actor{}, fmt.Errorf("invalid token")
	}

	subject, ok := claims["sub"].(string)
	if !ok {
		return actor.Actor{}, fmt.Errorf("invalid sub claim")
	}

	roleString, ok := claims["role"].(string)
	if !ok {
		return actor.Actor{}, fmt.Errorf("invalid role claim")
	}

	subjectID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(roleString)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(role, subjectID)
}

// actorFrom retrieves the authenticated actor placed on the context by
// IdentityMiddleware.
func actorFrom(ctx echo.Context) (actor.Actor, bool) {
	act, ok := ctx.Get(actorContextKey).(actor.Actor)
	return act, ok
}
