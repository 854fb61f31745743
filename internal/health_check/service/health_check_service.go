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
	"time"

	dbprovider "github.com/campusconnect/campus-events-service/internal/system/database/provider"
)

type HealthCheckServiceInterface interface {
	CheckReadiness() error
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct{}

// GetHealthCheckService creates a new instance of HealthCheckService.
func GetHealthCheckService() HealthCheckServiceInterface {

	return &HealthCheckService{}
}

// CheckReadiness verifies the document store responds to a ping.
func (hs *HealthCheckService) CheckReadiness() error {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return dbprovider.Ping(ctx)
}
