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

package provider

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect/campus-events-service/internal/system/config"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
)

var (
	database *mongo.Database
	initOnce sync.Once
	initErr  error
)

// InitDatabase connects the Mongo client and pings the deployment. Must be
// called once at startup before any store is used.
func InitDatabase(cfg config.MongoConfig) error {

	initOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.DB_CLIENT_INIT.Code,
				Message:     errors2.DB_CLIENT_INIT.Message,
				Description: "Failed to connect to the document store.",
			}, err)
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			initErr = errors2.NewServerError(errors2.ErrorMessage{
				Code:        errors2.DB_CLIENT_INIT.Code,
				Message:     errors2.DB_CLIENT_INIT.Message,
				Description: "Document store did not respond to ping.",
			}, err)
			return
		}

		database = client.Database(cfg.Database)
	})

	return initErr
}

// GetDatabase returns the shared database handle.
func GetDatabase() *mongo.Database {

	if database == nil {
		panic("document store is not initialized")
	}
	return database
}

// Ping verifies the document store is reachable. Used by the health check.
func Ping(ctx context.Context) error {

	if database == nil {
		return errors2.NewServerError(errors2.DB_CLIENT_INIT, nil)
	}
	return database.Client().Ping(ctx, nil)
}
