package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const WorkerIDKey contextKey = "workerID"
const WorkerRoleKey contextKey = "workerRole"

var jwtSecret []byte

func InitJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-in-production"
	}
	jwtSecret = []byte(secret)
}

func GenerateToken(workerID int64, role string) (string, error) {
	claims := jwt.MapClaims{
		"worker_id": workerID,
		"role":      role,
		"exp":       time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
			return
		}

		tokenString := bearerToken[1]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Invalid token claims", http.StatusUnauthorized)
			return
		}

		// MapClaims decodes JSON numbers as float64
		workerIDClaim, ok := claims["worker_id"].(float64)
		if !ok {
			http.Error(w, "Invalid worker ID in token", http.StatusUnauthorized)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			http.Error(w, "Invalid role in token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), WorkerIDKey, int64(workerIDClaim))
		ctx = context.WithValue(ctx, WorkerRoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetWorkerIDFromContext(ctx context.Context) (int64, bool) {
	workerID, ok := ctx.Value(WorkerIDKey).(int64)
	return workerID, ok
}

func GetWorkerRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(WorkerRoleKey).(string)
	return role, ok
}
