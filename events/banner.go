package events

import (
	"fmt"
	"log"
	"net/http"

	"couchfest/filemgr"
	"couchfest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var eventpicUploadPath = "./static/eventpic"

// UploadBanner saves an event's banner image plus a thumbnail and records the
// filename in the event's Image field.
func (h *Handler) UploadBanner(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("event_id")

	ctx := r.Context()
	if h.Store.FetchEvent(ctx, eventID, true) == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Event with ID %s not found here.", eventID))
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}
	file, _, err := r.FormFile("banner")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Banner file is required")
		return
	}
	defer file.Close()

	name, err := filemgr.SaveImageWithThumb(file, eventpicUploadPath, eventID, 300)
	if err != nil {
		log.Printf("Error saving banner for event %s: %v", eventID, err)
		utils.RespondWithError(w, http.StatusBadRequest, "Could not save banner image")
		return
	}

	updated := h.Store.UpdateEvent(ctx, bson.M{"EventID": eventID}, bson.M{"Image": name})
	if updated == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Event with ID %s not found here.", eventID))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
