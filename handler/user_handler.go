package handler

import (
	"encoding/json"
	"errors"
	"faction-api/common"
	"faction-api/logger"
	"faction-api/model"
	"faction-api/repository"
	"faction-api/service"
	"net/http"
)

type UserHandler struct {
	userRepo    repository.IUserRepository
	authService *service.AuthService
}

func NewUserHandler(userRepo repository.IUserRepository, authService *service.AuthService) *UserHandler {
	return &UserHandler{userRepo: userRepo, authService: authService}
}

// Register godoc
// @Summary      Register a new user account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  model.RegisterRequest  true  "account details"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  common.AppError
// @Failure      409  {object}  common.AppError
// @Router       /api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RegisterRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	id, err := h.authService.Register(r.Context(), req.Username, req.Password, req.FactionID, req.Rank)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			return common.NewAppError(http.StatusConflict, "Username already taken", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not create user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
	return nil
}

// Login godoc
// @Summary      Authenticate and receive an access/refresh token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  model.LoginRequest  true  "credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Router       /api/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	accessToken, refreshToken, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid username or password", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not log in", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
	return nil
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  model.RefreshRequest  true  "refresh token"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  common.AppError
// @Failure      401  {object}  common.AppError
// @Router       /api/refresh [post]
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.RefreshRequest
	if !common.ValidateAndDecode(w, r, &req) {
		return nil
	}

	accessToken, err := h.authService.Refresh(r.Context(), req.Username, req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefreshToken) {
			return common.NewAppError(http.StatusUnauthorized, "Invalid or expired refresh token", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not refresh token", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"accessToken": accessToken})
	return nil
}

// ListUsers returns all accounts, optionally filtered by faction. Password
// hashes never leave the server.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	var (
		users []*model.User
		err   error
	)

	if factionID := r.URL.Query().Get("factionId"); factionID != "" {
		users, err = h.userRepo.GetUsersByFactionID(r.Context(), factionID)
	} else {
		users, err = h.userRepo.GetAllUsers(r.Context())
	}
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve users", err)
	}

	logger.Log.WithField("count", len(users)).Info("List users request served")

	public := make([]model.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(public)
	return nil
}

// GetUser returns a single account by username.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	username := r.PathValue("username")

	user, err := h.userRepo.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve user", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user.Public())
	return nil
}
