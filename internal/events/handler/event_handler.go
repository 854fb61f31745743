package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/campusconnect/campus-events-service/internal/events/model"
	"github.com/campusconnect/campus-events-service/internal/events/provider"
	"github.com/campusconnect/campus-events-service/internal/system/authn"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/utils"
)

// Multipart forms are parsed with a memory limit slightly above the image
// size cap so valid uploads never spill to disk.
const maxMultipartMemory = 6 << 20

type EventHandler struct{}

func NewEventHandler() *EventHandler {

	return &EventHandler{}
}

// ListEvents fetches events for the requested filter.
func (eh *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {

	identity, err := authn.IdentityFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	filter := r.URL.Query().Get("filter")

	eventsService := provider.NewEventsProvider().GetEventsService()
	events, err := eventsService.ListEvents(r.Context(), filter, identity)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, events)
}

// GetEvent fetches a specific event.
func (eh *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {

	eventId := r.PathValue("id")
	if eventId == "" {
		http.Error(w, "Missing event id", http.StatusBadRequest)
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	event, err := eventsService.GetEvent(r.Context(), eventId)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, event)
}

// CreateEvent handles event submission. The body is either a multipart form
// with an optional image part or a plain JSON document.
func (eh *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {

	identity, err := authn.IdentityFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	var form model.EventForm
	var image *model.ImageUpload

	if isMultipart(r) {
		form, image, err = parseEventForm(r)
		if err != nil {
			utils.HandleError(w, err)
			return
		}
		defer closeImage(image)
	} else {
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			utils.HandleError(w, badRequestError(utils.HandleDecodeError(err, "event")))
			return
		}
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	eventId, err := eventsService.CreateEvent(r.Context(), identity, form, image)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, map[string]string{"id": eventId})
}

// UpdateEvent applies a partial update to an existing event.
func (eh *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {

	identity, err := authn.IdentityFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	eventId := r.PathValue("id")
	if eventId == "" {
		http.Error(w, "Missing event id", http.StatusBadRequest)
		return
	}

	var changes model.EventUpdate
	var image *model.ImageUpload

	if isMultipart(r) {
		changes, image, err = parseEventUpdate(r)
		if err != nil {
			utils.HandleError(w, err)
			return
		}
		defer closeImage(image)
	} else {
		if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
			utils.HandleError(w, badRequestError(utils.HandleDecodeError(err, "event")))
			return
		}
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.UpdateEvent(r.Context(), identity, eventId, changes, image); err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteEvent removes a single event.
func (eh *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {

	identity, err := authn.IdentityFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	eventId := r.PathValue("id")
	if eventId == "" {
		http.Error(w, "Missing event id", http.StatusBadRequest)
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.DeleteEvent(r.Context(), identity, eventId); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAllEvents wipes the collection. Administrative only.
func (eh *EventHandler) DeleteAllEvents(w http.ResponseWriter, r *http.Request) {

	identity, err := authn.IdentityFromRequest(r)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	eventsService := provider.NewEventsProvider().GetEventsService()
	if err := eventsService.DeleteAllEvents(r.Context(), identity); err != nil {
		utils.HandleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// parseEventForm reads the create form fields and the optional image part.
func parseEventForm(r *http.Request) (model.EventForm, *model.ImageUpload, error) {

	var form model.EventForm

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return form, nil, badRequestError("Malformed multipart form.")
	}

	form.Title = r.FormValue("title")
	form.Description = r.FormValue("description")
	form.Location = r.FormValue("location")
	form.Type = r.FormValue("type")

	if value := r.FormValue("startTime"); value != "" {
		startTime, err := parseEventTime(value)
		if err != nil {
			return form, nil, badRequestError("Invalid startTime format.")
		}
		form.StartTime = startTime
	}
	if value := r.FormValue("endTime"); value != "" {
		endTime, err := parseEventTime(value)
		if err != nil {
			return form, nil, badRequestError("Invalid endTime format.")
		}
		form.EndTime = endTime
	}

	image, err := parseImage(r)
	if err != nil {
		return form, nil, err
	}
	return form, image, nil
}

// parseEventUpdate reads only the fields present in the form, so absent keys
// stay untouched in the stored document.
func parseEventUpdate(r *http.Request) (model.EventUpdate, *model.ImageUpload, error) {

	var changes model.EventUpdate

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return changes, nil, badRequestError("Malformed multipart form.")
	}

	values := r.MultipartForm.Value
	if v, ok := formValue(values, "title"); ok {
		changes.Title = &v
	}
	if v, ok := formValue(values, "description"); ok {
		changes.Description = &v
	}
	if v, ok := formValue(values, "location"); ok {
		changes.Location = &v
	}
	if v, ok := formValue(values, "type"); ok {
		changes.Type = &v
	}
	if v, ok := formValue(values, "imageUrl"); ok {
		changes.ImageURL = &v
	}
	if v, ok := formValue(values, "startTime"); ok {
		startTime, err := parseEventTime(v)
		if err != nil {
			return changes, nil, badRequestError("Invalid startTime format.")
		}
		changes.StartTime = &startTime
	}
	if v, ok := formValue(values, "endTime"); ok {
		endTime, err := parseEventTime(v)
		if err != nil {
			return changes, nil, badRequestError("Invalid endTime format.")
		}
		changes.EndTime = &endTime
	}

	image, err := parseImage(r)
	if err != nil {
		return changes, nil, err
	}
	return changes, image, nil
}

func formValue(values map[string][]string, key string) (string, bool) {
	if list, ok := values[key]; ok && len(list) > 0 {
		return list[0], true
	}
	return "", false
}

// parseEventTime accepts RFC 3339 and the datetime-local format submitted
// by browser form inputs.
func parseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04", value, time.UTC)
}

func parseImage(r *http.Request) (*model.ImageUpload, error) {

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, badRequestError("Malformed image part.")
	}

	return &model.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	}, nil
}

func closeImage(image *model.ImageUpload) {
	if image == nil {
		return
	}
	if closer, ok := image.Content.(io.Closer); ok {
		_ = closer.Close()
	}
}

func badRequestError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: description,
	}, http.StatusBadRequest)
}
