package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"charity/internal/domain"
	"charity/internal/middleware"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func (a *App) AuthRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		a.error(w, http.StatusBadRequest, "bad_request", "name, email and a password of at least 6 characters are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.domainError(w, err)
		return
	}
	user, err := a.Users.Create(r.Context(), &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         domain.UserRoleDonor,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}

	token, err := a.signToken(user)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, authResponse{
		ID: user.ID, Name: user.Name, Email: user.Email, Role: string(user.Role), Token: token,
	})
}

func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user, err := a.Users.GetByEmail(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}

	token, err := a.signToken(user)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, authResponse{
		ID: user.ID, Name: user.Name, Email: user.Email, Role: string(user.Role), Token: token,
	})
}

func (a *App) AuthProfile(w http.ResponseWriter, r *http.Request) {
	user, err := a.Users.GetByID(r.Context(), a.currentUserID(r))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"phone": user.Phone,
		"role":  string(user.Role),
	})
}

// UsersWithStats serves per-user donation summaries, optionally narrowed by a
// keyword over name or email.
func (a *App) UsersWithStats(w http.ResponseWriter, r *http.Request) {
	summaries, err := a.Reports.UserDonationSummaries(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]map[string]any, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, map[string]any{
			"id":              s.ID,
			"name":            s.Name,
			"email":           s.Email,
			"phone":           s.Phone,
			"role":            string(s.Role),
			"created_at":      s.CreatedAt,
			"total_donations": s.TotalDonations,
			"total_amount":    s.TotalAmount,
			"verified_amount": s.VerifiedAmount,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) signToken(user *domain.User) (string, error) {
	return middleware.SignJWT(a.JWTSecret, middleware.TokenClaims{
		Sub:      user.ID,
		Role:     string(user.Role),
		Exp:      time.Now().Add(a.TokenTTL).Unix(),
		Issuer:   "charity-api",
		Audience: "charity-clients",
	})
}
