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

package authn

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusconnect/campus-events-service/internal/system/config"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/log"
)

// IssueToken signs a session token for the given identity using the
// configured HMAC secret.
func IssueToken(identity Identity) (string, error) {

	cfg := config.GetRuntime().Config.Auth
	ttl := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub":      identity.UID,
		"username": identity.Username,
		"admin":    identity.Admin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		logger := log.GetLogger()
		errMsg := "Error occurred when signing the session token."
		logger.Debug(errMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.TOKEN_SIGNING.Code,
			Message:     errors2.TOKEN_SIGNING.Message,
			Description: errMsg,
		}, err)
		return "", serverError
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token and returns the identity
// carried in its claims.
func ValidateToken(tokenString string) (*Identity, error) {

	logger := log.GetLogger()
	cfg := config.GetRuntime().Config.Auth

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		logger.Debug("Failed to parse session token.", log.Error(err))
		return nil, unauthorizedError()
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		logger.Debug("Session token does not carry a subject claim.")
		return nil, unauthorizedError()
	}

	identity := &Identity{UID: sub}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	if admin, ok := claims["admin"].(bool); ok {
		identity.Admin = admin
	}
	return identity, nil
}

// IdentityFromRequest extracts and validates the bearer token from the
// Authorization header. A missing header yields a nil identity and no error;
// callers decide whether the operation requires authentication.
func IdentityFromRequest(r *http.Request) (*Identity, error) {

	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, nil
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return nil, unauthorizedError()
	}

	return ValidateToken(strings.TrimPrefix(header, "Bearer "))
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UN_AUTHORIZED.Code,
		Message:     errors2.UN_AUTHORIZED.Message,
		Description: errors2.UN_AUTHORIZED.Description,
	}, http.StatusUnauthorized)
}
