/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/campusconnect/campus-events-service/internal/events/model"
	"github.com/campusconnect/campus-events-service/internal/events/store"
	"github.com/campusconnect/campus-events-service/internal/system/authn"
	"github.com/campusconnect/campus-events-service/internal/system/constants"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/log"
	"github.com/campusconnect/campus-events-service/internal/system/storage"
	"github.com/campusconnect/campus-events-service/internal/system/utils"
)

type EventsServiceInterface interface {
	ListEvents(ctx context.Context, filter string, identity *authn.Identity) ([]model.Event, error)
	GetEvent(ctx context.Context, eventId string) (*model.Event, error)
	CreateEvent(ctx context.Context, identity *authn.Identity, form model.EventForm, image *model.ImageUpload) (string, error)
	UpdateEvent(ctx context.Context, identity *authn.Identity, eventId string, changes model.EventUpdate, image *model.ImageUpload) error
	DeleteEvent(ctx context.Context, identity *authn.Identity, eventId string) error
	DeleteAllEvents(ctx context.Context, identity *authn.Identity) error
}

// EventsService is the default implementation of the EventsServiceInterface.
// The clock is a field so listing boundaries can be tested without store
// mutation; the "past event" cutoff moves with every call.
type EventsService struct {
	store store.EventStore
	blobs storage.BlobStore
	now   func() time.Time
}

// NewEventsService creates a new instance of EventsService.
func NewEventsService(eventStore store.EventStore, blobs storage.BlobStore) *EventsService {

	return &EventsService{
		store: eventStore,
		blobs: blobs,
		now:   time.Now,
	}
}

// ListEvents fetches events for the requested filter, drops the ones that
// already ended and returns the rest ordered by descending creation time.
func (es *EventsService) ListEvents(ctx context.Context, filter string, identity *authn.Identity) ([]model.Event, error) {

	var events []model.Event
	var err error

	switch {
	case filter == "" || filter == constants.FilterAll:
		events, err = es.store.FindAll(ctx)
	case filter == constants.FilterMyEvents:
		if identity == nil {
			return nil, unauthenticatedError("You must be logged in to list your own events.")
		}
		events, err = es.store.FindByOwner(ctx, identity.UID)
	case constants.AllowedEventTypes[filter]:
		events, err = es.store.FindByType(ctx, filter)
	default:
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_FILTER.Code,
			Message:     errors2.INVALID_FILTER.Message,
			Description: fmt.Sprintf("'%s' is not a known event filter.", filter),
		}, http.StatusBadRequest)
		return nil, clientError
	}
	if err != nil {
		return nil, err
	}

	// The cutoff is a moving boundary, so it is applied here on every call
	// rather than pushed into the store query. An event ending exactly now
	// is retained.
	now := es.now()
	upcoming := make([]model.Event, 0, len(events))
	for _, event := range events {
		if !event.EndTime.Before(now) {
			upcoming = append(upcoming, event)
		}
	}
	return upcoming, nil
}

// GetEvent fetches a single event by its id.
func (es *EventsService) GetEvent(ctx context.Context, eventId string) (*model.Event, error) {

	event, err := es.store.Find(ctx, eventId)
	if err != nil {
		logger := log.GetLogger()
		logger.Debug(fmt.Sprintf("Failed to fetch event with id: %s", eventId), log.Error(err))
		return nil, err
	}
	if event == nil {
		return nil, eventNotFoundError(eventId)
	}
	return event, nil
}

// CreateEvent validates the submitted form, uploads the image when one is
// attached, stamps ownership and creation time and writes the record.
func (es *EventsService) CreateEvent(ctx context.Context, identity *authn.Identity, form model.EventForm, image *model.ImageUpload) (string, error) {

	if identity == nil {
		return "", unauthenticatedError("You must be logged in to create an event.")
	}

	if err := es.validateForm(form); err != nil {
		return "", err
	}
	if err := es.validateImage(image); err != nil {
		return "", err
	}

	imageUrl := ""
	if image != nil {
		url, err := es.uploadImage(ctx, image)
		if err != nil {
			return "", err
		}
		imageUrl = url
	}

	username := identity.Username
	if username == "" {
		username = constants.AnonymousUsername
	}

	now := es.now().UTC()
	event := model.Event{
		Title:       form.Title,
		Description: form.Description,
		StartTime:   form.StartTime,
		EndTime:     form.EndTime,
		Location:    form.Location,
		Type:        form.Type,
		ImageURL:    imageUrl,
		CreatedBy: model.CreatedBy{
			UID:      identity.UID,
			Username: username,
		},
		CreatedAt: now.Format(time.RFC3339),
		Timestamp: now.UnixMilli(),
	}

	// If the insert fails after a successful upload the blob is orphaned;
	// there is no compensating delete.
	return es.store.Insert(ctx, event)
}

// UpdateEvent merges the supplied changes into an existing event after the
// ownership check. Only supplied keys change.
func (es *EventsService) UpdateEvent(ctx context.Context, identity *authn.Identity, eventId string, changes model.EventUpdate, image *model.ImageUpload) error {

	if identity == nil {
		return unauthenticatedError("You must be logged in to update an event.")
	}

	existing, err := es.store.Find(ctx, eventId)
	if err != nil {
		return err
	}
	if existing == nil {
		return eventNotFoundError(eventId)
	}
	if existing.CreatedBy.UID != identity.UID {
		return forbiddenError("You can only edit your own events.")
	}

	startTime := existing.StartTime
	if changes.StartTime != nil {
		startTime = *changes.StartTime
	}
	endTime := existing.EndTime
	if changes.EndTime != nil {
		endTime = *changes.EndTime
	}
	if !endTime.After(startTime) {
		return invalidEventError("End time must be after start time.")
	}
	if changes.Type != nil && !constants.AllowedEventTypes[*changes.Type] {
		return invalidEventError(fmt.Sprintf("'%s' is not an expected event type.", *changes.Type))
	}
	if err := es.validateImage(image); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if changes.Title != nil {
		fields["title"] = *changes.Title
	}
	if changes.Description != nil {
		fields["description"] = *changes.Description
	}
	if changes.StartTime != nil {
		fields["startTime"] = *changes.StartTime
	}
	if changes.EndTime != nil {
		fields["endTime"] = *changes.EndTime
	}
	if changes.Location != nil {
		fields["location"] = *changes.Location
	}
	if changes.Type != nil {
		fields["type"] = *changes.Type
	}

	if image != nil {
		url, err := es.uploadImage(ctx, image)
		if err != nil {
			return err
		}
		fields["imageUrl"] = url
	} else if changes.ImageURL != nil {
		fields["imageUrl"] = *changes.ImageURL
	}

	fields["updatedAt"] = es.now().UTC().Format(time.RFC3339)

	return es.store.Update(ctx, eventId, fields)
}

// DeleteEvent removes a single event after the ownership check.
func (es *EventsService) DeleteEvent(ctx context.Context, identity *authn.Identity, eventId string) error {

	if identity == nil {
		return unauthenticatedError("You must be logged in to delete an event.")
	}

	existing, err := es.store.Find(ctx, eventId)
	if err != nil {
		return err
	}
	if existing == nil {
		return eventNotFoundError(eventId)
	}
	if existing.CreatedBy.UID != identity.UID {
		return forbiddenError("You can only delete your own events.")
	}

	return es.store.Delete(ctx, eventId)
}

// DeleteAllEvents wipes the events collection. Operator affordance, gated
// behind the administrative role claim.
func (es *EventsService) DeleteAllEvents(ctx context.Context, identity *authn.Identity) error {

	if identity == nil {
		return unauthenticatedError("You must be logged in to delete events.")
	}
	if !identity.Admin {
		return forbiddenError("Only administrators can delete all events.")
	}

	logger := log.GetLogger()
	logger.Warn("Deleting every event in the collection", log.String("uid", identity.UID))
	return es.store.DeleteAll(ctx)
}

// validateForm runs the struct tag validation and the semantic checks the
// tags cannot express.
func (es *EventsService) validateForm(form model.EventForm) error {

	if fieldError := utils.ValidateStruct(form); fieldError != nil {
		return invalidEventError("Please fill in all required fields.")
	}
	if !constants.AllowedEventTypes[form.Type] {
		return invalidEventError(fmt.Sprintf("'%s' is not an expected event type.", form.Type))
	}
	if !form.EndTime.After(form.StartTime) {
		return invalidEventError("End time must be after start time.")
	}
	return nil
}

// validateImage rejects oversized or non-image uploads before any blob
// store call.
func (es *EventsService) validateImage(image *model.ImageUpload) error {

	if image == nil {
		return nil
	}
	if image.Size > constants.MaxImageSizeBytes {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_IMAGE.Code,
			Message:     errors2.INVALID_IMAGE.Message,
			Description: "Image size should be less than 5MB.",
		}, http.StatusBadRequest)
		return clientError
	}
	if !constants.AllowedImageContentTypes[image.ContentType] {
		clientError := errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_IMAGE.Code,
			Message:     errors2.INVALID_IMAGE.Message,
			Description: "Please upload a valid image file (PNG, JPG, or GIF).",
		}, http.StatusBadRequest)
		return clientError
	}
	return nil
}

// uploadImage stores the image under a time-derived name. Two uploads of the
// same content produce two distinct stored objects.
func (es *EventsService) uploadImage(ctx context.Context, image *model.ImageUpload) (string, error) {

	key := fmt.Sprintf("%s/%d-%s", constants.ImagePathPrefix, es.now().UnixMilli(), image.Filename)
	url, err := es.blobs.Upload(ctx, storage.Object{
		Key:          key,
		Content:      image.Content,
		ContentType:  image.ContentType,
		OriginalName: image.Filename,
	})
	if err != nil {
		logger := log.GetLogger()
		logger.Debug("Failed to upload event image", log.String("key", key), log.Error(err))
		return "", err
	}
	return url, nil
}

func unauthenticatedError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}

func forbiddenError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.FORBIDDEN.Code,
		Message:     errors2.FORBIDDEN.Message,
		Description: description,
	}, http.StatusForbidden)
}

func eventNotFoundError(eventId string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.EVENT_NOT_FOUND.Code,
		Message:     errors2.EVENT_NOT_FOUND.Message,
		Description: fmt.Sprintf("Event with ID %s not found.", eventId),
	}, http.StatusNotFound)
}

func invalidEventError(description string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.INVALID_EVENT.Code,
		Message:     errors2.INVALID_EVENT.Message,
		Description: description,
	}, http.StatusBadRequest)
}
