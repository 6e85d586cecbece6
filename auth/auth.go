package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"couchfest/db"
	"couchfest/globals"
	"couchfest/middleware"
	"couchfest/models"
	"couchfest/rdx"
	"couchfest/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

// failMessage deliberately does not say which of username/password was wrong.
const failMessage = "Authentication failed! Please enter your correct credentials."

type Handler struct {
	Store  *db.Store
	Cache  *rdx.Cache
	Secret []byte
}

func (h *Handler) issueToken(userID, username string) (string, error) {
	claims := &middleware.Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.Secret)
}

// checkPassword fetches the credential for username and verifies the plaintext
// against the stored bcrypt hash. The returned document is nil on any failure.
func (h *Handler) checkPassword(r *http.Request, username, password string) (userID string, ok bool) {
	credential := h.Store.FetchCredential(r.Context(), username)
	if credential == nil {
		return "", false
	}
	hash, _ := credential["credential"].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", false
	}
	userID, _ = credential["UserID"].(string)
	return userID, true
}

// GenerateToken handles the form-encoded token flow. Auth failure answers 200
// with an error payload; form clients inspect the body, not the status.
func (h *Handler) GenerateToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log.Println("Generating a token to identify user.")
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	userID, ok := h.checkPassword(r, username, password)
	if !ok {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"error": failMessage})
		return
	}

	token, err := h.issueToken(userID, username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	h.Cache.StoreToken(r.Context(), userID, token)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// AuthenticateUser handles the JSON login flow. Its failure status is 500, not
// 401, matching the deployed frontend's expectations.
func (h *Handler) AuthenticateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form models.LoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	userID, ok := h.checkPassword(r, form.Username, form.Password)
	if !ok {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"error": failMessage})
		return
	}

	token, err := h.issueToken(userID, "")
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	h.Cache.StoreToken(r.Context(), userID, token)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// VerifyUser returns the stored credential document for the supplied username.
func (h *Handler) VerifyUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body models.Credential
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	credential := h.Store.FetchCredential(r.Context(), body.Username)
	if credential == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Credentials not found here.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, credential)
}

// CurrentUser resolves the authenticated request to its user document. The
// token was already verified by the middleware; a miss here means the user was
// deleted after the token was issued.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}
	log.Println("Getting currently logged in user.")
	user := h.Store.FetchUser(r.Context(), userID, true)
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
