package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bnema/vodpipe/internal/service"
)

const (
	msgNotLoggedIn  = "You are not logged in! Please log in to get access."
	msgInvalidToken = "Invalid token. Please log in again."
	msgExpiredToken = "Your token has expired. Please log in again."
)

type AuthService interface {
	ValidateToken(token string) (string, error)
}

type ownerKey struct{}

// OwnerFromContext returns the owner id set by AuthMiddleware.
func OwnerFromContext(ctx context.Context) string {
	owner, _ := ctx.Value(ownerKey{}).(string)
	return owner
}

// AuthMiddleware requires an "Authorization: Bearer <token>" header and puts
// the token's owner on the request context.
func AuthMiddleware(authSvc AuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeAuthError(w, msgNotLoggedIn)
			return
		}

		owner, err := authSvc.ValidateToken(token)
		if err != nil {
			if errors.Is(err, service.ErrExpiredToken) {
				writeAuthError(w, msgExpiredToken)
			} else {
				writeAuthError(w, msgInvalidToken)
			}
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), ownerKey{}, owner)))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="vodpipe"`)
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"status":  "fail",
		"message": message,
	})
}
