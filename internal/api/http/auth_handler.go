package http

import (
	"net/http"

	"rma-portal-backend/internal/domain"
	"rma-portal-backend/internal/security"
	"rma-portal-backend/internal/service"
)

// AuthHandler serves registration and login for customers and staff.
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	customer, token, err := h.auth.RegisterCustomer(r.Context(), req.Name, req.Email, req.Phone, req.Address, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, authResponse{Token: token, User: customer})
}

func (h *AuthHandler) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	customer, token, err := h.auth.CustomerLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, authResponse{Token: token, User: customer})
}

func (h *AuthHandler) StaffLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	staff, token, err := h.auth.StaffLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, authResponse{Token: token, User: staff})
}

// Me returns the account behind the presented token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		respondError(w, security.ErrInvalidToken)
		return
	}
	profile, err := h.auth.Profile(r.Context(), actor.ID, actor.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, profile)
}

type createStaffRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// CreateStaff is super-admin only; the router enforces the role.
func (h *AuthHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req createStaffRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}
	staff, err := h.auth.CreateStaffUser(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, staff)
}
