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

	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/log"
	"github.com/campusconnect/campus-events-service/internal/users/model"
)

const queryTimeout = 10 * time.Second

// MongoUserStore handles document store operations for the users collection.
type MongoUserStore struct {
	collection *mongo.Collection
}

// NewMongoUserStore initializes a store for the given users collection.
func NewMongoUserStore(db *mongo.Database, collectionName string) *MongoUserStore {
	return &MongoUserStore{
		collection: db.Collection(collectionName),
	}
}

// Insert writes a single user profile and returns the store-assigned id.
func (s *MongoUserStore) Insert(ctx context.Context, user model.UserProfile) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		logger := log.GetLogger()
		errorMsg := fmt.Sprintf("Failed to insert user profile with uid: %s", user.UID)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.ADD_USER.Code,
			Message:     errors2.ADD_USER.Message,
			Description: errorMsg,
		}, err)
		return "", serverError
	}

	if objectId, ok := result.InsertedID.(primitive.ObjectID); ok {
		return objectId.Hex(), nil
	}
	return "", nil
}

// FindByUID fetches a user profile by its identity provider uid.
func (s *MongoUserStore) FindByUID(ctx context.Context, uid string) (*model.UserProfile, error) {

	return s.findOne(ctx, bson.M{"uid": uid})
}

// FindByEmail fetches a user profile by email.
func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*model.UserProfile, error) {

	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*model.UserProfile, error) {

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user model.UserProfile
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to fetch user profile from the document store."
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.GET_USER.Code,
			Message:     errors2.GET_USER.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}
	return &user, nil
}
