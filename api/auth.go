package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler implements the admin credential login. There is a single admin
// account configured through the environment; sessions are stateless JWTs.
type AuthHandler struct {
	username      string
	passwordHash  []byte
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthHandler creates an AuthHandler. passwordHash must be a bcrypt hash
// of the configured admin password.
func NewAuthHandler(username string, passwordHash []byte, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		username:      username,
		passwordHash:  passwordHash,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, "Missing credentials", http.StatusBadRequest)
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)) == nil
	if !userOK || !passOK {
		writeError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  req.Username,
		"role": "admin",
		"exp":  time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeData(w, loginResponse{Token: tokenStr}, http.StatusOK)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// For stateless JWT, logout is client-side (just delete token)
	writeJSON(w, Response{Success: true, Message: "signed out"}, http.StatusOK)
}
