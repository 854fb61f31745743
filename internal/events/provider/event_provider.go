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
	"sync"

	"github.com/campusconnect/campus-events-service/internal/events/service"
	"github.com/campusconnect/campus-events-service/internal/events/store"
	"github.com/campusconnect/campus-events-service/internal/system/constants"
	dbprovider "github.com/campusconnect/campus-events-service/internal/system/database/provider"
	"github.com/campusconnect/campus-events-service/internal/system/storage"
)

// EventsProviderInterface defines the interface for the events provider.
type EventsProviderInterface interface {
	GetEventsService() service.EventsServiceInterface
}

// EventsProvider is the default implementation of the EventsProviderInterface.
type EventsProvider struct{}

var (
	eventsService service.EventsServiceInterface
	once          sync.Once
)

// NewEventsProvider creates a new instance of EventsProvider.
func NewEventsProvider() EventsProviderInterface {

	return &EventsProvider{}
}

// GetEventsService returns the events service wired against the shared
// document and blob stores.
func (ep *EventsProvider) GetEventsService() service.EventsServiceInterface {

	once.Do(func() {
		eventStore := store.NewMongoEventStore(dbprovider.GetDatabase(), constants.EventCollection)
		eventsService = service.NewEventsService(eventStore, storage.GetBlobStore())
	})
	return eventsService
}
