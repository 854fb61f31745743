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
	"fmt"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"github.com/campusconnect/campus-events-service/internal/system/config"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/log"
)

// OSSBlobStore stores objects in an OSS bucket and serves them through the
// configured public base URL.
type OSSBlobStore struct {
	bucket        *oss.Bucket
	publicBaseURL string
}

// NewOSSBlobStore connects to the bucket named in the storage configuration.
func NewOSSBlobStore(cfg config.StorageConfig) (*OSSBlobStore, error) {

	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("oss bucket %s: %w", cfg.Bucket, err)
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.%s", cfg.Bucket, cfg.Endpoint)
	}

	return &OSSBlobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Upload puts the object into the bucket with its content type and original
// file name attached as metadata, and returns the public URL.
func (s *OSSBlobStore) Upload(ctx context.Context, object Object) (string, error) {

	logger := log.GetLogger()

	opts := []oss.Option{
		oss.ContentType(object.ContentType),
		oss.Meta("original-name", object.OriginalName),
		oss.WithContext(ctx),
	}

	if err := s.bucket.PutObject(object.Key, object.Content, opts...); err != nil {
		errorMsg := fmt.Sprintf("Failed to upload object with key: %s", object.Key)
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.UPLOAD_IMAGE.Code,
			Message:     errors2.UPLOAD_IMAGE.Message,
			Description: errorMsg,
		}, err)
		return "", serverError
	}

	return s.publicBaseURL + "/" + object.Key, nil
}
