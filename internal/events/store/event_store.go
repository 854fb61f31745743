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

	"github.com/campusconnect/campus-events-service/internal/events/model"
)

// EventStore is the document store surface used by the events service.
// Find returns (nil, nil) when no document matches the id. The Find* list
// methods return events ordered by the timestamp sort key, newest first.
type EventStore interface {
	Insert(ctx context.Context, event model.Event) (string, error)
	Find(ctx context.Context, eventId string) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByOwner(ctx context.Context, uid string) ([]model.Event, error)
	FindByType(ctx context.Context, eventType string) ([]model.Event, error)
	Update(ctx context.Context, eventId string, fields map[string]interface{}) error
	Delete(ctx context.Context, eventId string) error
	DeleteAll(ctx context.Context) error
}
