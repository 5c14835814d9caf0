package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ParentIDKey contextKey = "parent_id"

// JWTMiddleware accepts HS256 bearer tokens and stores the subject claim as the parent id.
func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "authorization header missing", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
				return
			}
			tokenString := parts[1]

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			parentID, err := token.Claims.GetSubject()
			if err != nil || parentID == "" {
				http.Error(w, "sub missing in token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ParentIDKey, parentID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetParentID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ParentIDKey).(string)
	return id, ok && id != ""
}
