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

	"github.com/campusconnect/campus-events-service/internal/system/constants"
	dbprovider "github.com/campusconnect/campus-events-service/internal/system/database/provider"
	"github.com/campusconnect/campus-events-service/internal/users/service"
	"github.com/campusconnect/campus-events-service/internal/users/store"
)

// UsersProviderInterface defines the interface for the users provider.
type UsersProviderInterface interface {
	GetUsersService() service.UsersServiceInterface
}

// UsersProvider is the default implementation of the UsersProviderInterface.
type UsersProvider struct{}

var (
	usersService service.UsersServiceInterface
	once         sync.Once
)

// NewUsersProvider creates a new instance of UsersProvider.
func NewUsersProvider() UsersProviderInterface {

	return &UsersProvider{}
}

// GetUsersService returns the users service wired against the shared
// document store.
func (up *UsersProvider) GetUsersService() service.UsersServiceInterface {

	once.Do(func() {
		userStore := store.NewMongoUserStore(dbprovider.GetDatabase(), constants.UserCollection)
		usersService = service.NewUsersService(userStore)
	})
	return usersService
}
