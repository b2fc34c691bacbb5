package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resale-store/models"
	"resale-store/store"
	"resale-store/utils"
)

// UserController handles user-related requests
type UserController struct {
	Users        store.UserStore
	EmailService *utils.EmailService
}

func NewUserController(users store.UserStore, emailService *utils.EmailService) *UserController {
	return &UserController{Users: users, EmailService: emailService}
}

// IssueToken hands out a bearer token for an already-registered
// email. Unknown emails get 401; registration happens via UpsertUser
// on first sign-in.
func (uc *UserController) IssueToken(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "Missing email query parameter", http.StatusBadRequest)
		return
	}

	if _, err := uc.Users.GetByEmail(r.Context(), email); err != nil {
		http.Error(w, "Unauthorized access", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWT(email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"accessToken": token})
}

// UpsertUser is create-or-fetch by email: the storefront posts the
// signed-in identity on every session, and an existing record is
// returned untouched.
func (uc *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if user.Email == "" {
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	if user.Role == "" {
		user.Role = models.RoleBuyer
	}
	if !models.ValidRole(user.Role) || user.Role == models.RoleAdmin {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}
	user.Verified = false

	stored, created, err := uc.Users.Upsert(r.Context(), user)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, stored)
}

// SellerFlag reports whether the given email belongs to a seller and
// whether that seller is verified.
func (uc *UserController) SellerFlag(w http.ResponseWriter, r *http.Request) {
	user, err := uc.Users.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"isSeller": user.Role == models.RoleSeller,
		"verified": user.Verified,
	})
}

func (uc *UserController) BuyerFlag(w http.ResponseWriter, r *http.Request) {
	user, err := uc.Users.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isBuyer": user.Role == models.RoleBuyer})
}

func (uc *UserController) AdminFlag(w http.ResponseWriter, r *http.Request) {
	user, err := uc.Users.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isAdmin": user.Role == models.RoleAdmin})
}

// ListByRole returns all users holding the requested role (admin
// dashboard: all sellers, all buyers).
func (uc *UserController) ListByRole(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if !models.ValidRole(role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	users, err := uc.Users.ListByRole(r.Context(), role)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// VerifySeller marks a seller account as verified and notifies them.
func (uc *UserController) VerifySeller(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := uc.Users.SetVerified(r.Context(), id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	if uc.EmailService != nil && user.Role == models.RoleSeller {
		go func(email, name string) {
			if err := uc.EmailService.SendSellerVerifiedEmail(email, name); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	writeJSON(w, http.StatusOK, user)
}

func (uc *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	if err := uc.Users.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
