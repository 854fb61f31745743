package handler

import (
	"encoding/json"
	"net/http"

	errors2 "github.com/campusconnect/campus-events-service/internal/system/errors"
	"github.com/campusconnect/campus-events-service/internal/system/utils"
	"github.com/campusconnect/campus-events-service/internal/users/model"
	"github.com/campusconnect/campus-events-service/internal/users/provider"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {

	return &UserHandler{}
}

// SignUp handles account creation.
func (uh *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {

	var request model.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, decodeError(err, "sign-up"))
		return
	}

	usersService := provider.NewUsersProvider().GetUsersService()
	response, err := usersService.SignUp(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, response)
}

// SignIn handles credential sign-in.
func (uh *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {

	var request model.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, decodeError(err, "sign-in"))
		return
	}

	usersService := provider.NewUsersProvider().GetUsersService()
	response, err := usersService.SignIn(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// SignInWithGoogle handles social sign-in with a Google ID token.
func (uh *UserHandler) SignInWithGoogle(w http.ResponseWriter, r *http.Request) {

	var request model.GoogleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.HandleError(w, decodeError(err, "google sign-in"))
		return
	}

	usersService := provider.NewUsersProvider().GetUsersService()
	response, err := usersService.SignInWithGoogle(r.Context(), request)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// SignOut exists for client symmetry. Session tokens are stateless, so
// there is nothing to revoke; the client discards the token.
func (uh *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {

	utils.WriteJSONResponse(w, http.StatusOK, map[string]bool{"success": true})
}

func decodeError(err error, resourceName string) error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.BAD_REQUEST.Code,
		Message:     errors2.BAD_REQUEST.Message,
		Description: utils.HandleDecodeError(err, resourceName),
	}, http.StatusBadRequest)
}
