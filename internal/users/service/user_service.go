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
	"net/http"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/campus-events-service/internal/system/authn"
	"github.com/campusconnect/campus-events-service/internal/system/config"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/log"
	"github.com/campusconnect/campus-events-service/internal/system/utils"
	"github.com/campusconnect/campus-events-service/internal/users/model"
	"github.com/campusconnect/campus-events-service/internal/users/store"
)

type UsersServiceInterface interface {
	SignUp(ctx context.Context, request model.SignUpRequest) (*model.AuthResponse, error)
	SignIn(ctx context.Context, request model.SignInRequest) (*model.AuthResponse, error)
	SignInWithGoogle(ctx context.Context, request model.GoogleSignInRequest) (*model.AuthResponse, error)
}

// GoogleClaims is the subset of the verified ID token used to provision a
// profile on first social sign-in.
type GoogleClaims struct {
	Sub   string
	Email string
	Name  string
}

// UsersService is the default implementation of the UsersServiceInterface.
// Token issuing and Google verification are fields so tests can run without
// a configured runtime or a live Google endpoint.
type UsersService struct {
	store       store.UserStore
	issueToken  func(identity authn.Identity) (string, error)
	verifyToken func(idToken string) (*GoogleClaims, error)
	now         func() time.Time
}

// NewUsersService creates a new instance of UsersService.
func NewUsersService(userStore store.UserStore) *UsersService {

	return &UsersService{
		store:       userStore,
		issueToken:  authn.IssueToken,
		verifyToken: verifyGoogleIDToken,
		now:         time.Now,
	}
}

// SignUp creates an account, stores the profile and issues a session token.
func (us *UsersService) SignUp(ctx context.Context, request model.SignUpRequest) (*model.AuthResponse, error) {

	if fieldError := utils.ValidateStruct(request); fieldError != nil {
		description := "Please fill in all required fields."
		switch {
		case fieldError.Field() == "Email" && fieldError.Tag() == "email":
			description = "Invalid email address."
		case fieldError.Field() == "Password" && fieldError.Tag() == "min":
			description = "Password should be at least 6 characters."
		}
		return nil, signUpError(description, http.StatusBadRequest)
	}

	existing, err := us.store.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, signUpError("This email is already registered.", http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger := log.GetLogger()
		errorMsg := "Failed to hash the account password."
		logger.Debug(errorMsg, log.Error(err))
		serverError := errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.HASH_PASSWORD.Code,
			Message:     errors2.HASH_PASSWORD.Message,
			Description: errorMsg,
		}, err)
		return nil, serverError
	}

	user := model.UserProfile{
		UID:          uuid.NewString(),
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: string(hash),
		CreatedAt:    us.now().UTC().Format(time.RFC3339),
	}
	if _, err := us.store.Insert(ctx, user); err != nil {
		return nil, err
	}

	return us.respondWithToken(user)
}

// SignIn verifies credentials and issues a session token.
func (us *UsersService) SignIn(ctx context.Context, request model.SignInRequest) (*model.AuthResponse, error) {

	if fieldError := utils.ValidateStruct(request); fieldError != nil {
		return nil, signInError("Please fill in all required fields.", http.StatusBadRequest)
	}

	user, err := us.store.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, signInError("No account found with this email.", http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, signInError("Incorrect password.", http.StatusUnauthorized)
	}

	return us.respondWithToken(*user)
}

// SignInWithGoogle verifies the Google ID token and provisions the profile
// on first sign-in.
func (us *UsersService) SignInWithGoogle(ctx context.Context, request model.GoogleSignInRequest) (*model.AuthResponse, error) {

	if fieldError := utils.ValidateStruct(request); fieldError != nil {
		return nil, signInError("Missing Google ID token.", http.StatusBadRequest)
	}

	claims, err := us.verifyToken(request.IDToken)
	if err != nil {
		logger := log.GetLogger()
		logger.Debug("Google ID token verification failed.", log.Error(err))
		return nil, signInError("Invalid Google ID token.", http.StatusUnauthorized)
	}

	user, err := us.store.FindByUID(ctx, claims.Sub)
	if err != nil {
		return nil, err
	}
	if user == nil {
		created := model.UserProfile{
			UID:       claims.Sub,
			Username:  claims.Name,
			Email:     claims.Email,
			CreatedAt: us.now().UTC().Format(time.RFC3339),
		}
		if _, err := us.store.Insert(ctx, created); err != nil {
			return nil, err
		}
		user = &created
	}

	return us.respondWithToken(*user)
}

func (us *UsersService) respondWithToken(user model.UserProfile) (*model.AuthResponse, error) {

	token, err := us.issueToken(authn.Identity{
		UID:      user.UID,
		Username: user.Username,
		Admin:    user.Admin,
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		Success: true,
		Token:   token,
		User:    user,
	}, nil
}

// verifyGoogleIDToken checks the token signature and audience against the
// configured client id and decodes the claim set.
func verifyGoogleIDToken(idToken string) (*GoogleClaims, error) {

	clientID := config.GetRuntime().Config.Auth.GoogleClientID
	verifier := googleAuthIDTokenVerifier.Verifier{}
	if err := verifier.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}
	return &GoogleClaims{
		Sub:   claimSet.Sub,
		Email: claimSet.Email,
		Name:  claimSet.Name,
	}, nil
}

func signUpError(description string, statusCode int) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.SIGN_UP_FAILED.Code,
		Message:     errors2.SIGN_UP_FAILED.Message,
		Description: description,
	}, statusCode)
}

func signInError(description string, statusCode int) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.SIGN_IN_FAILED.Code,
		Message:     errors2.SIGN_IN_FAILED.Message,
		Description: description,
	}, statusCode)
}
