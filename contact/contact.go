package contact

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"couchfest/db"
	"couchfest/models"
	"couchfest/seq"
	"couchfest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	Store *db.Store
}

// SaveForm stores a contact-us submission. FormID is allocated sequentially
// unless the caller supplied one, in which case a collision answers 409.
func (h *Handler) SaveForm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form models.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	log.Println("Creating Contact Us form")
	ctx := r.Context()

	existing := h.Store.FetchContactForms(ctx)
	newID := seq.NextID(existing, "FormID", "ContactUs")

	if form.FormID == "" {
		form.FormID = newID
	} else if h.Store.FetchContactForm(ctx, form.FormID) != nil {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("Conflict: Contact Form with ID %s already exists! Try again", form.FormID))
		return
	}

	if h.Store.CreateContactForm(ctx, form) {
		if h.Store.FetchContactForm(ctx, form.FormID) != nil {
			utils.RespondWithJSON(w, http.StatusOK, form)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"error": "Couldn't create contact form"})
		return
	}

	utils.RespondWithError(w, http.StatusBadRequest, "Bad request.")
}

func (h *Handler) GetForms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	log.Println("Getting ContactUs forms")
	forms := h.Store.FetchContactForms(r.Context())
	if len(forms) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Contact Us forms not found here.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, forms)
}

func (h *Handler) GetFormByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	formID := ps.ByName("form_id")
	form := h.Store.FetchContactForm(r.Context(), formID)
	if form == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Contact Form with ID %s not found here.", formID))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, form)
}

func (h *Handler) DeleteFormByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	formID := ps.ByName("form_id")
	log.Printf("Deleting Contact Form by ID: %s", formID)

	ctx := r.Context()
	snapshot := h.Store.FetchContactForm(ctx, formID)
	if snapshot != nil {
		if h.Store.DeleteContactForm(ctx, bson.M{"FormID": formID}) != nil {
			utils.RespondWithJSON(w, http.StatusOK, snapshot)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound,
		fmt.Sprintf("Contact Form with ID %s not found here.", formID))
}
