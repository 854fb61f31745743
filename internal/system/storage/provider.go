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

package storage

import (
	"sync"

	"github.com/campusconnect/campus-events-service/internal/system/config"
)

var (
	blobStore BlobStore
	initOnce  sync.Once
	initErr   error
)

// InitBlobStore connects the OSS-backed blob store. Must be called once at
// startup before any upload.
func InitBlobStore(cfg config.StorageConfig) error {

	initOnce.Do(func() {
		blobStore, initErr = NewOSSBlobStore(cfg)
	})
	return initErr
}

// GetBlobStore returns the shared blob store.
func GetBlobStore() BlobStore {

	if blobStore == nil {
		panic("blob store is not initialized")
	}
	return blobStore
}
