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

package errors

const errorPrefix = "CES-"

var (
	// Server error codes

	ADD_EVENT = ErrorMessage{
		Code:    errorPrefix + "15001",
		Message: "Error while adding event.",
	}

	GET_EVENT = ErrorMessage{
		Code:    errorPrefix + "15002",
		Message: "Error while fetching event(s).",
	}

	UPDATE_EVENT = ErrorMessage{
		Code:    errorPrefix + "15003",
		Message: "Error while updating event.",
	}

	DELETE_EVENT = ErrorMessage{
		Code:    errorPrefix + "15004",
		Message: "Error while deleting event.",
	}

	ADD_USER = ErrorMessage{
		Code:    errorPrefix + "15005",
		Message: "Error while adding user profile.",
	}

	GET_USER = ErrorMessage{
		Code:    errorPrefix + "15006",
		Message: "Error while fetching user profile.",
	}

	UPLOAD_IMAGE = ErrorMessage{
		Code:    errorPrefix + "15007",
		Message: "Error while uploading event image.",
	}

	DB_CLIENT_INIT = ErrorMessage{
		Code:    errorPrefix + "15008",
		Message: "Unable to initialize database client.",
	}

	TOKEN_SIGNING = ErrorMessage{
		Code:    errorPrefix + "15009",
		Message: "Error while issuing session token.",
	}

	PARSING_ERROR = ErrorMessage{
		Code:    errorPrefix + "15010",
		Message: "Parsing token failed.",
	}

	HASH_PASSWORD = ErrorMessage{
		Code:    errorPrefix + "15011",
		Message: "Error while hashing password.",
	}

	// Client error codes

	BAD_REQUEST = ErrorMessage{
		Code:    errorPrefix + "11001",
		Message: "Invalid body format.",
	}

	UN_AUTHORIZED = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized",
		Description: "Authorization failure. Authorization information was invalid or missing from your request.",
	}

	FORBIDDEN = ErrorMessage{
		Code:    errorPrefix + "11003",
		Message: "Forbidden",
	}

	EVENT_NOT_FOUND = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Event not found.",
		Description: "No event record found for the given event id.",
	}

	INVALID_EVENT = ErrorMessage{
		Code:    errorPrefix + "11005",
		Message: "Event validation failed.",
	}

	INVALID_IMAGE = ErrorMessage{
		Code:    errorPrefix + "11006",
		Message: "Event image validation failed.",
	}

	INVALID_FILTER = ErrorMessage{
		Code:    errorPrefix + "11007",
		Message: "Unknown event filter.",
	}

	SIGN_UP_FAILED = ErrorMessage{
		Code:    errorPrefix + "11008",
		Message: "Failed to create account.",
	}

	SIGN_IN_FAILED = ErrorMessage{
		Code:    errorPrefix + "11009",
		Message: "Failed to sign in.",
	}
)
