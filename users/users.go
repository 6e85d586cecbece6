package users

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"couchfest/db"
	"couchfest/models"
	"couchfest/rdx"
	"couchfest/seq"
	"couchfest/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const defaultAccountType = "Normal user"

type Handler struct {
	Store *db.Store
	Cache *rdx.Cache
}

// CreateUser registers a new account from form fields and creates the paired
// credential. Conflicts on a caller-supplied ID or on the username/email
// natural keys answer 409; a confirmation-fetch miss after insert answers 200
// with an error payload.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	firstname := r.PostFormValue("firstname")
	lastname := r.PostFormValue("lastname")
	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if firstname == "" || lastname == "" || username == "" || email == "" || password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	log.Println("Creating a new user")
	ctx := r.Context()

	existing := h.Store.FetchUsers(ctx)
	userID := seq.NextID(existing, "UserID", "Users")

	if supplied := r.PostFormValue("userid"); supplied != "" {
		if h.Store.FetchUser(ctx, supplied, true) != nil {
			utils.RespondWithError(w, http.StatusConflict,
				fmt.Sprintf("Conflict: User with ID %s already exists! Try again", supplied))
			return
		}
		userID = supplied
	}

	if h.Store.FetchUser(ctx, username, false) != nil {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("Conflict: User with username %s already exists! Try again", username))
		return
	}
	if h.Store.FetchUserByEmail(ctx, email) != nil {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("Conflict: User with email %s already exists! Try again", email))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for user %s: %v", username, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		UserID:      userID,
		Username:    username,
		FirstName:   firstname,
		LastName:    lastname,
		Email:       email,
		AccountType: defaultAccountType,
		PaymentType: uuid.New().String(),
		MyEvents:    []string{},
		MyTickets:   []string{},
		MyGenres:    []string{},
		InCart:      []string{},
		IsAdmin:     false,
	}
	credential := models.Credential{
		UserID:     userID,
		Username:   username,
		Credential: string(hashed),
	}

	if h.Store.CreateUser(ctx, user) {
		h.Store.AddCredential(ctx, credential)
		h.Cache.SetUsername(ctx, userID, username)

		// confirm both documents actually persisted
		if h.Store.FetchUser(ctx, userID, true) != nil &&
			h.Store.FetchCredential(ctx, username) != nil {
			utils.RespondWithJSON(w, http.StatusOK, user)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"error": "Couldn't create new user"})
		return
	}

	utils.RespondWithError(w, http.StatusBadRequest, "Bad request.")
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	users := h.Store.FetchUsers(r.Context())
	if len(users) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Users not found here.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("user_id")
	log.Printf("Getting user by ID: %s", userID)
	user := h.Store.FetchUser(r.Context(), userID, true)
	if user == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("User with ID %s not found here.", userID))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUserByName(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	username := ps.ByName("user_name")
	log.Printf("Getting user by Username: %s", username)
	user := h.Store.FetchUser(r.Context(), username, false)
	if user == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("User with username %s not found here.", username))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUserByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("user_email")
	log.Printf("Getting user by Email: %s", email)
	user := h.Store.FetchUserByEmail(r.Context(), email)
	if user == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("User with email %s not found here.", email))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateUserByID replaces the user document identified by the body's UserID.
// InCart is treated as a set and de-duplicated before saving.
func (h *Handler) UpdateUserByID(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	log.Printf("Updating user by ID: %s", user.UserID)
	if len(user.InCart) > 0 {
		user.InCart = utils.Dedupe(user.InCart)
	}

	ctx := r.Context()
	if h.Store.FetchUser(ctx, user.UserID, true) == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("User with ID %s not found here.", user.UserID))
		return
	}
	updated := h.Store.UpdateUser(ctx, bson.M{"UserID": user.UserID}, user)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) UpdateUserByName(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	log.Printf("Updating user by Username: %s", user.Username)

	ctx := r.Context()
	if h.Store.FetchUser(ctx, user.Username, false) == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("User with username %s not found here.", user.Username))
		return
	}
	updated := h.Store.UpdateUser(ctx, bson.M{"Username": user.Username}, user)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteUserByID removes the user and cascades to its credential. The
// pre-deletion snapshot is returned only when both deletions individually
// succeeded; the cascade is best-effort, not atomic.
func (h *Handler) DeleteUserByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := ps.ByName("user_id")
	log.Printf("Deleting user by ID: %s", userID)

	ctx := r.Context()
	snapshot := h.Store.FetchUser(ctx, userID, true)
	if snapshot != nil {
		q := bson.M{"UserID": userID}
		if h.Store.DeleteUser(ctx, q) != nil && h.Store.DeleteCredential(ctx, q) != nil {
			h.Cache.DropToken(ctx, userID)
			utils.RespondWithJSON(w, http.StatusOK, snapshot)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound,
		fmt.Sprintf("User with ID %s not found here.", userID))
}

func (h *Handler) DeleteUserByName(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	username := ps.ByName("user_name")
	log.Printf("Deleting user by Username: %s", username)

	ctx := r.Context()
	snapshot := h.Store.FetchUser(ctx, username, false)
	if snapshot != nil {
		q := bson.M{"Username": username}
		if h.Store.DeleteUser(ctx, q) != nil && h.Store.DeleteCredential(ctx, q) != nil {
			if userID, ok := snapshot["UserID"].(string); ok {
				h.Cache.DropToken(ctx, userID)
			}
			utils.RespondWithJSON(w, http.StatusOK, snapshot)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound,
		fmt.Sprintf("User with username %s not found here.", username))
}
