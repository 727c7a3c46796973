package api

import (
	"encoding/json"
	"net/http"

	"doctorportal/internal/db"

	"github.com/gorilla/mux"
)

type UserService interface {
	Upsert(email string, user *db.User) (string, error)
	List() ([]db.User, error)
	IsAdmin(email string) (bool, error)
	Promote(email string) error
	Delete(email string) (int64, error)
}

type UserHandler struct {
	Service UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// UpsertUser stores the profile and returns a fresh access token. This is
// how the frontend obtains its token after sign-in.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	var user db.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	token, err := h.Service.Upsert(email, &user)
	if err != nil {
		http.Error(w, "Could not save user", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(UpsertUserResponse{
		Result: UpsertResult{Acknowledged: true},
		Token:  token,
	})
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List()
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []db.User{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := h.Service.Promote(email); err != nil {
		http.Error(w, "Could not promote user", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"result": UpsertResult{Acknowledged: true},
	})
}

// CheckAdmin is a public read: it reports whether the email has the admin
// role, false for unknown emails.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	isAdmin, err := h.Service.IsAdmin(email)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AdminCheckResponse{Admin: isAdmin})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	deleted, err := h.Service.Delete(email)
	if err != nil {
		http.Error(w, "Could not delete user", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"deletedCount": deleted})
}
