package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Xjua-nes/Juanes-ikernell/database"
	"github.com/Xjua-nes/Juanes-ikernell/middleware"
	"github.com/Xjua-nes/Juanes-ikernell/models"
)

type AuthHandler struct {
	workers WorkerStore
	roles   RoleGetter
	mail    Notifier
}

func NewAuthHandler(workers WorkerStore, roles RoleGetter, mail Notifier) *AuthHandler {
	return &AuthHandler{workers: workers, roles: roles, mail: mail}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token  string         `json:"token"`
	Role   string         `json:"role"`
	Worker *models.Worker `json:"worker"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var login LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if login.Email == "" || login.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	worker, err := h.workers.FindByEmail(r.Context(), login.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.Password), []byte(login.Password)); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	roleName := ""
	if role, err := h.roles.Get(r.Context(), worker.RoleID); err == nil {
		roleName = role.Name
	}

	token, err := middleware.GenerateToken(worker.ID, roleName)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	worker.Password = "" // Don't send the hash back
	respondWithJSON(w, http.StatusOK, AuthResponse{
		Token:  token,
		Role:   roleName,
		Worker: worker,
	})
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset issues a fresh 24h token, overwriting any prior
// one, and mails the reset link. The response never reveals whether the
// email is registered.
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var payload PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	genericReply := MessageResponse{
		Message: "If the email is registered, a password reset link has been sent.",
	}

	worker, err := h.workers.FindByEmail(r.Context(), payload.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithJSON(w, http.StatusOK, genericReply)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	worker.IssueResetToken(time.Now())
	if err := h.workers.Update(r.Context(), worker); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	h.mail.SendPasswordResetEmail(worker)

	respondWithJSON(w, http.StatusOK, genericReply)
}

type PasswordResetConfirmation struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ConfirmPasswordReset consumes a reset token. An expired token is
// cleared as a side effect of the failed attempt; a successful reset
// clears it too, so a token never validates twice.
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var payload PasswordResetConfirmation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if payload.Token == "" || payload.NewPassword == "" {
		respondWithError(w, http.StatusBadRequest, "Token and new password are required")
		return
	}

	worker, err := h.workers.FindByResetToken(r.Context(), payload.Token)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondWithError(w, http.StatusBadRequest, "The reset token is not valid")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if worker.ResetTokenExpired(time.Now()) {
		worker.ClearResetToken()
		if err := h.workers.Update(r.Context(), worker); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Database error")
			return
		}
		respondWithError(w, http.StatusBadRequest, "The reset token has expired or is not valid")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Error processing password")
		return
	}

	worker.Password = string(hashed)
	worker.ClearResetToken()

	if err := h.workers.Update(r.Context(), worker); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Password reset successfully"})
}
