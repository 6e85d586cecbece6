package events

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

// CreateEvent inserts a new event. The EventID is allocated ("A<n>") unless
// the caller supplied one, in which case a collision answers 409. EventName is
// a natural key and must be free.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if event.EventName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing event name")
		return
	}

	log.Println("Creating event")
	ctx := r.Context()

	existing := h.Store.FetchEvents(ctx)
	newID := seq.NextID(existing, "EventID", "Events")

	if event.EventID == "" {
		event.EventID = newID
	} else if h.Store.FetchEvent(ctx, event.EventID, true) != nil {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("Conflict: Event with ID %s already exists! Try again", event.EventID))
		return
	}

	if h.Store.FetchEvent(ctx, event.EventName, false) != nil {
		utils.RespondWithError(w, http.StatusConflict,
			fmt.Sprintf("Conflict: Event with event name %s already exists! Try again", event.EventName))
		return
	}

	if h.Store.CreateEvent(ctx, event) {
		if h.Store.FetchEvent(ctx, event.EventID, true) != nil {
			utils.RespondWithJSON(w, http.StatusOK, event)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"error": "Couldn't create new event"})
		return
	}

	utils.RespondWithError(w, http.StatusBadRequest, "Bad request.")
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	events := h.Store.FetchEvents(r.Context())
	if len(events) == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Events not found here.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, events)
}

func (h *Handler) GetEventByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("event_id")
	log.Printf("Getting event by ID: %s", eventID)
	event := h.Store.FetchEvent(r.Context(), eventID, true)
	if event == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Event with ID %s not found here.", eventID))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

func (h *Handler) GetEventByName(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("event_name")
	log.Printf("Getting event by name: %s", name)
	event := h.Store.FetchEvent(r.Context(), name, false)
	if event == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Event with name %s not found here.", name))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, event)
}

// UpdateEventByID replaces the event document identified by the body's EventID.
func (h *Handler) UpdateEventByID(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	log.Printf("Updating event by ID: %s", event.EventID)

	ctx := r.Context()
	if h.Store.FetchEvent(ctx, event.EventID, true) == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Event with ID %s not found here.", event.EventID))
		return
	}
	updated := h.Store.UpdateEvent(ctx, bson.M{"EventID": event.EventID}, event)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) UpdateEventByName(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("event_name")
	var event models.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	log.Printf("Updating event by name: %s", name)

	ctx := r.Context()
	if h.Store.FetchEvent(ctx, name, false) == nil {
		utils.RespondWithError(w, http.StatusNotFound,
			fmt.Sprintf("Event with name %s not found here.", name))
		return
	}
	updated := h.Store.UpdateEvent(ctx, bson.M{"EventName": name}, event)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteEventByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("event_id")
	log.Printf("Deleting event by ID: %s", eventID)

	ctx := r.Context()
	snapshot := h.Store.FetchEvent(ctx, eventID, true)
	if snapshot != nil {
		if h.Store.DeleteEvent(ctx, bson.M{"EventID": eventID}) != nil {
			utils.RespondWithJSON(w, http.StatusOK, snapshot)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound,
		fmt.Sprintf("Event with ID %s not found here.", eventID))
}

func (h *Handler) DeleteEventByName(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("event_name")
	log.Printf("Deleting event by name: %s", name)

	ctx := r.Context()
	snapshot := h.Store.FetchEvent(ctx, name, false)
	if snapshot != nil {
		if h.Store.DeleteEvent(ctx, bson.M{"EventName": name}) != nil {
			utils.RespondWithJSON(w, http.StatusOK, snapshot)
			return
		}
	}
	utils.RespondWithError(w, http.StatusNotFound,
		fmt.Sprintf("Event with name %s not found here.", name))
}
