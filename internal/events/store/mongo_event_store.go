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

package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect/campus-events-service/internal/events/model"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/log"
)

const queryTimeout = 10 * time.Second

// MongoEventStore handles document store operations for the events collection.
type MongoEventStore struct {
	collection *mongo.Collection
}

// NewMongoEventStore initializes a store for the given events collection.
func NewMongoEventStore(db *mongo.Database, collectionName string) *MongoEventStore {
	return &MongoEventStore{
		collection: db.Collection(collectionName),
	}
}

// Insert writes a single event and returns the store-assigned id.
func (s *MongoEventStore) Insert(ctx context.Context, event model.Event) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, event)
	logger := log.GetLogger()
	if err != nil {
		errorMsg := "Failed to insert event into the document store."
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EVENT.Code,
			Message:     errors2.ADD_EVENT.Message,
			Description: errorMsg,
		}, err)
		return "", serverError
	}

	objectId, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_EVENT.Code,
			Message:     errors2.ADD_EVENT.Message,
			Description: "Document store returned an unexpected id type.",
		}, nil)
		return "", serverError
	}

	logger.Info("Event persisted successfully", log.String("event_id", objectId.Hex()))
	return objectId.Hex(), nil
}

// Find fetches a single event by its id. Returns (nil, nil) when absent or
// when the id is not a valid object id.
func (s *MongoEventStore) Find(ctx context.Context, eventId string) (*model.Event, error) {

	objectId, err := primitive.ObjectIDFromHex(eventId)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var event model.Event
	err = s.collection.FindOne(ctx, bson.M{"_id": objectId}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, s.findError(err, eventId)
	}
	return &event, nil
}

// FindAll fetches every event ordered by timestamp descending.
func (s *MongoEventStore) FindAll(ctx context.Context) ([]model.Event, error) {

	return s.findFiltered(ctx, bson.M{})
}

// FindByOwner fetches the events created by the given identity.
func (s *MongoEventStore) FindByOwner(ctx context.Context, uid string) ([]model.Event, error) {

	return s.findFiltered(ctx, bson.M{"createdBy.uid": uid})
}

// FindByType fetches the events of a single category.
func (s *MongoEventStore) FindByType(ctx context.Context, eventType string) ([]model.Event, error) {

	return s.findFiltered(ctx, bson.M{"type": eventType})
}

// Update merges the given fields into a stored event.
func (s *MongoEventStore) Update(ctx context.Context, eventId string, fields map[string]interface{}) error {

	objectId, err := primitive.ObjectIDFromHex(eventId)
	if err != nil {
		return s.mutationError(errors2.UPDATE_EVENT, err, eventId)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{}
	for key, value := range fields {
		update[key] = value
	}

	_, err = s.collection.UpdateOne(ctx, bson.M{"_id": objectId}, bson.M{"$set": update})
	if err != nil {
		return s.mutationError(errors2.UPDATE_EVENT, err, eventId)
	}
	return nil
}

// Delete removes a single event by its id.
func (s *MongoEventStore) Delete(ctx context.Context, eventId string) error {

	objectId, err := primitive.ObjectIDFromHex(eventId)
	if err != nil {
		return s.mutationError(errors2.DELETE_EVENT, err, eventId)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err = s.collection.DeleteOne(ctx, bson.M{"_id": objectId})
	if err != nil {
		return s.mutationError(errors2.DELETE_EVENT, err, eventId)
	}
	return nil
}

// DeleteAll removes every event in the collection.
func (s *MongoEventStore) DeleteAll(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to delete the events collection."
		logger.Debug(errorMsg, log.Error(err))
		return errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.DELETE_EVENT.Code,
			Message:     errors2.DELETE_EVENT.Message,
			Description: errorMsg,
		}, err)
	}
	return nil
}

func (s *MongoEventStore) findFiltered(ctx context.Context, filter bson.M) ([]model.Event, error) {

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, s.findError(err, "")
	}
	defer cursor.Close(ctx)

	var events []model.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, s.findError(err, "")
	}
	return events, nil
}

func (s *MongoEventStore) findError(err error, eventId string) error {

	logger := log.GetLogger()
	errorMsg := "Failed to fetch event(s) from the document store."
	if eventId != "" {
		errorMsg = fmt.Sprintf("Failed to fetch event with id: %s", eventId)
	}
	logger.Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        errors2.GET_EVENT.Code,
		Message:     errors2.GET_EVENT.Message,
		Description: errorMsg,
	}, err)
}

func (s *MongoEventStore) mutationError(msg errors2.ErrorMessage, err error, eventId string) error {

	logger := log.GetLogger()
	errorMsg := fmt.Sprintf("Failed to modify event with id: %s", eventId)
	logger.Debug(errorMsg, log.Error(err))
	return errors2.NewServerError(errors2.ErrorMessage{
		Code:        msg.Code,
		Message:     msg.Message,
		Description: errorMsg,
	}, err)
}
