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

package model

import (
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatedBy is a snapshot of the creating identity taken at creation time.
// It is not a live reference; ownership never transfers.
type CreatedBy struct {
	UID      string `json:"uid" bson:"uid"`
	Username string `json:"username" bson:"username"`
}

// Event is a single bulletin entry. Keys are kept camelCase in the store for
// parity with documents written by earlier versions of the application.
type Event struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	StartTime   time.Time          `json:"startTime" bson:"startTime"`
	EndTime     time.Time          `json:"endTime" bson:"endTime"`
	Location    string             `json:"location" bson:"location"`
	Type        string             `json:"type" bson:"type"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	CreatedBy   CreatedBy          `json:"createdBy" bson:"createdBy"`
	CreatedAt   string             `json:"createdAt" bson:"createdAt"`
	// Timestamp mirrors CreatedAt in epoch milliseconds and is the sole
	// sort key for listings.
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
	UpdatedAt string `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// EventForm carries the caller-supplied fields of a new event.
type EventForm struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Type        string    `json:"type" validate:"required"`
}

// EventUpdate carries a partial set of changes. Only non-nil fields are
// merged into the stored document.
type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Type        *string    `json:"type,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
}

// ImageUpload is an image attached to a create or update request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
