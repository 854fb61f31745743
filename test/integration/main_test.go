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

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/campusconnect/campus-events-service/internal/system/log"
	"github.com/campusconnect/campus-events-service/test/setup"
)

var testDatabase *mongo.Database

func TestMain(m *testing.M) {
	ctx := context.Background()

	_ = log.Init("ERROR")

	mongoEnv, err := setup.SetupTestMongo(ctx)
	if err != nil {
		fmt.Println("Failed to start test MongoDB:", err)
		os.Exit(1)
	}
	testDatabase = mongoEnv.Database

	code := m.Run()

	_ = mongoEnv.Client.Disconnect(ctx)
	_ = mongoEnv.Container.Terminate(ctx)

	os.Exit(code)
}
