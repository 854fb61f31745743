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

package constants

const ApiBasePath = "/api/v1"

// Document store collections.
const (
	EventCollection = "events"
	UserCollection  = "users"
)

// Event filters accepted by the query engine. Anything else must be one of
// the allowed event types.
const (
	FilterAll      = "all"
	FilterMyEvents = "my-events"
)

// AllowedEventTypes defines the valid set of event categories.
var AllowedEventTypes = map[string]bool{
	"party":    true,
	"career":   true,
	"food":     true,
	"social":   true,
	"academic": true,
}

// Event image constraints. Uploads are rejected locally before any blob
// store call when these are not met.
const MaxImageSizeBytes = 5 * 1024 * 1024

var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ImagePathPrefix is the blob store namespace for event images.
const ImagePathPrefix = "event-images"

// AnonymousUsername is stamped on events whose creator has no display name.
const AnonymousUsername = "Anonymous"
