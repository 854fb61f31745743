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
	"context"
	"io"
)

// Object is a single blob to be stored: its key within the bucket, the
// payload and the metadata attached to it.
type Object struct {
	Key          string
	Content      io.Reader
	ContentType  string
	OriginalName string
}

// BlobStore stores arbitrary byte payloads under a name and returns a
// publicly retrievable URL for each stored object.
type BlobStore interface {
	Upload(ctx context.Context, object Object) (string, error)
}
