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
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusconnect/campus-events-service/internal/system/authn"
	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/users/model"
)

type fakeUserStore struct {
	users       []model.UserProfile
	insertCalls int
}

func (fs *fakeUserStore) Insert(ctx context.Context, user model.UserProfile) (string, error) {
	fs.insertCalls++
	fs.users = append(fs.users, user)
	return "inserted-id", nil
}

func (fs *fakeUserStore) FindByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	for i := range fs.users {
		if fs.users[i].UID == uid {
			found := fs.users[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (fs *fakeUserStore) FindByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	for i := range fs.users {
		if fs.users[i].Email == email {
			found := fs.users[i]
			return &found, nil
		}
	}
	return nil, nil
}

func newTestUsersService(fs *fakeUserStore) *UsersService {
	return &UsersService{
		store: fs,
		issueToken: func(identity authn.Identity) (string, error) {
			return "token-for-" + identity.UID, nil
		},
		verifyToken: func(idToken string) (*GoogleClaims, error) {
			return nil, errors.New("not configured")
		},
		now: func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) },
	}
}

func requireClientError(t *testing.T, err error, statusCode int) *errors2.ClientError {
	t.Helper()
	require.Error(t, err)
	var clientError *errors2.ClientError
	require.ErrorAs(t, err, &clientError)
	assert.Equal(t, statusCode, clientError.StatusCode)
	return clientError
}

func signUpRequest() model.SignUpRequest {
	return model.SignUpRequest{
		Username: "jordan",
		Email:    "jordan@example.edu",
		Password: "hunter22",
	}
}

func TestSignUp_CreatesProfileAndIssuesToken(t *testing.T) {
	fs := &fakeUserStore{}
	us := newTestUsersService(fs)

	response, err := us.SignUp(context.Background(), signUpRequest())

	require.NoError(t, err)
	assert.True(t, response.Success)
	require.Equal(t, 1, fs.insertCalls)

	stored := fs.users[0]
	assert.NotEmpty(t, stored.UID)
	assert.Equal(t, "jordan", stored.Username)
	assert.Equal(t, "jordan@example.edu", stored.Email)
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "password must not be stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
	assert.Equal(t, "token-for-"+stored.UID, response.Token)
}

func TestSignUp_InvalidEmailRejected(t *testing.T) {
	fs := &fakeUserStore{}
	us := newTestUsersService(fs)

	request := signUpRequest()
	request.Email = "not-an-email"

	_, err := us.SignUp(context.Background(), request)

	clientError := requireClientError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Invalid email address.", clientError.Description)
	assert.Zero(t, fs.insertCalls)
}

func TestSignUp_ShortPasswordRejected(t *testing.T) {
	fs := &fakeUserStore{}
	us := newTestUsersService(fs)

	request := signUpRequest()
	request.Password = "abc"

	_, err := us.SignUp(context.Background(), request)

	clientError := requireClientError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Password should be at least 6 characters.", clientError.Description)
	assert.Zero(t, fs.insertCalls)
}

func TestSignUp_DuplicateEmailRejected(t *testing.T) {
	fs := &fakeUserStore{users: []model.UserProfile{{
		UID:   "uid-1",
		Email: "jordan@example.edu",
	}}}
	us := newTestUsersService(fs)

	_, err := us.SignUp(context.Background(), signUpRequest())

	clientError := requireClientError(t, err, http.StatusConflict)
	assert.Equal(t, "This email is already registered.", clientError.Description)
	assert.Zero(t, fs.insertCalls)
}

func TestSignIn_Succeeds(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	fs := &fakeUserStore{users: []model.UserProfile{{
		UID:          "uid-1",
		Username:     "jordan",
		Email:        "jordan@example.edu",
		PasswordHash: string(hash),
	}}}
	us := newTestUsersService(fs)

	response, err := us.SignIn(context.Background(), model.SignInRequest{
		Email:    "jordan@example.edu",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "token-for-uid-1", response.Token)
	assert.Equal(t, "uid-1", response.User.UID)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	us := newTestUsersService(&fakeUserStore{})

	_, err := us.SignIn(context.Background(), model.SignInRequest{
		Email:    "nobody@example.edu",
		Password: "whatever",
	})

	clientError := requireClientError(t, err, http.StatusUnauthorized)
	assert.Equal(t, "No account found with this email.", clientError.Description)
}

func TestSignIn_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	fs := &fakeUserStore{users: []model.UserProfile{{
		UID:          "uid-1",
		Email:        "jordan@example.edu",
		PasswordHash: string(hash),
	}}}
	us := newTestUsersService(fs)

	_, err = us.SignIn(context.Background(), model.SignInRequest{
		Email:    "jordan@example.edu",
		Password: "wrong",
	})

	clientError := requireClientError(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Incorrect password.", clientError.Description)
}

func TestSignInWithGoogle_ProvisionsProfileOnFirstSignIn(t *testing.T) {
	fs := &fakeUserStore{}
	us := newTestUsersService(fs)
	us.verifyToken = func(idToken string) (*GoogleClaims, error) {
		return &GoogleClaims{Sub: "google-sub-1", Email: "sam@example.edu", Name: "Sam"}, nil
	}

	response, err := us.SignInWithGoogle(context.Background(), model.GoogleSignInRequest{IDToken: "id-token"})

	require.NoError(t, err)
	require.Equal(t, 1, fs.insertCalls)
	assert.Equal(t, "google-sub-1", response.User.UID)
	assert.Equal(t, "Sam", response.User.Username)
	assert.Equal(t, "token-for-google-sub-1", response.Token)
}

func TestSignInWithGoogle_ReusesExistingProfile(t *testing.T) {
	fs := &fakeUserStore{users: []model.UserProfile{{
		UID:      "google-sub-1",
		Username: "Sam",
		Email:    "sam@example.edu",
	}}}
	us := newTestUsersService(fs)
	us.verifyToken = func(idToken string) (*GoogleClaims, error) {
		return &GoogleClaims{Sub: "google-sub-1", Email: "sam@example.edu", Name: "Sam"}, nil
	}

	response, err := us.SignInWithGoogle(context.Background(), model.GoogleSignInRequest{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Zero(t, fs.insertCalls, "existing profile must not be re-provisioned")
	assert.Equal(t, "google-sub-1", response.User.UID)
}

func TestSignInWithGoogle_InvalidTokenRejected(t *testing.T) {
	fs := &fakeUserStore{}
	us := newTestUsersService(fs)

	_, err := us.SignInWithGoogle(context.Background(), model.GoogleSignInRequest{IDToken: "garbage"})

	clientError := requireClientError(t, err, http.StatusUnauthorized)
	assert.Equal(t, "Invalid Google ID token.", clientError.Description)
	assert.Zero(t, fs.insertCalls)
}
