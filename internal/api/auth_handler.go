package api

import (
	"net/http"

	"github.com/serafaleo/wingman/internal/api/shared"
	"github.com/serafaleo/wingman/internal/service"
)

// AuthHandler handles the user credential endpoints: sign-up, login,
// refresh and logout.
type AuthHandler struct {
	users *service.UserService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{
		users: users,
	}
}

// SignUp handles POST /users/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Request body is not valid JSON.")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Failed to create new user.", shared.ValidationMessage(err))
		return
	}

	res, err := h.users.SignUp(r.Context(), &service.SignUpRequest{
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SignUpResponse{UserID: res.Value()})
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Request body is not valid JSON.")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Login failed", shared.ValidationMessage(err))
		return
	}

	res, err := h.users.Login(r.Context(), &service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res.Value())
}

// Refresh handles POST /users/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Invalid request", "Request body is not valid JSON.")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithProblem(w, r, http.StatusBadRequest,
			"Failed to refresh session.", shared.ValidationMessage(err))
		return
	}

	res, err := h.users.Refresh(r.Context(), &service.RefreshRequest{
		UserID:       req.UserID,
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, res.Value())
}

// Logout handles POST /users/logout. It requires authentication and is
// idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	res, err := h.users.Logout(r.Context(), userID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}
	if res.Failed() {
		shared.RespondWithFailure(w, r, res.Failure())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
