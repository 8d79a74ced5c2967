/*
   Copyright 2026 The Apifault Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

// Infrastructure / internal fault codes
//
// These codes describe server-side failures: the request was legitimate but
// the service (or something it depends on) could not do its part. They map to
// the 5xx range, except authentication failures which surface as 401.
const (
	// InternalError is the non-classified server-side failure.
	// Use this as the fallback when no more specific code applies.
	// Maps to HTTP 500.
	InternalError Code = "INTERNAL_ERROR"

	// InitializationError indicates that a component failed to start or to
	// prepare its working state (missing resource at boot, bad wiring).
	// Maps to HTTP 500.
	InitializationError Code = "INITIALIZATION_ERROR"

	// ExecutionError indicates that an internal operation failed mid-flight
	// after it had been validly started.
	// Maps to HTTP 500.
	ExecutionError Code = "EXECUTION_ERROR"

	// DatabaseError indicates a storage-layer failure: connection loss,
	// failed statement, transaction rollback.
	// Maps to HTTP 500.
	DatabaseError Code = "DATABASE_ERROR"

	// ConfigurationError indicates that the service configuration is missing,
	// malformed, or inconsistent with what the operation requires.
	// Maps to HTTP 500.
	ConfigurationError Code = "CONFIGURATION_ERROR"

	// CacheError indicates a cache-layer failure (read, write, invalidation).
	// Maps to HTTP 500.
	CacheError Code = "CACHE_ERROR"

	// SerializationError indicates that internal data could not be encoded or
	// decoded (JSON, template payloads, stored blobs).
	// Maps to HTTP 500.
	SerializationError Code = "SERIALIZATION_ERROR"

	// AuthenticationFailed indicates that the caller's identity could not be
	// established by the authentication machinery itself (verification crash,
	// provider fault, token signing failure).
	// Maps to HTTP 401.
	AuthenticationFailed Code = "AUTHENTICATION_FAILED"

	// UpstreamAPIError indicates that an upstream API returned a failure the
	// service cannot recover from.
	// Maps to HTTP 502.
	UpstreamAPIError Code = "UPSTREAM_API_ERROR"

	// ThirdPartyServiceError indicates that an external third-party service
	// misbehaved (bad response, unexpected contract, outage).
	// Maps to HTTP 502.
	ThirdPartyServiceError Code = "THIRD_PARTY_SERVICE_ERROR"

	// NetworkError indicates a transport-level failure while talking to a
	// remote dependency (DNS, connect, TLS, timeout at the socket level).
	// Maps to HTTP 502.
	NetworkError Code = "NETWORK_ERROR"
)

// Request validation codes
//
// The caller sent something structurally or semantically wrong. All of these
// map to HTTP 400.
const (
	// ValidationError indicates that the payload violates a validation rule.
	// Usually carries the failing fields in the fault message.
	ValidationError Code = "VALIDATION_ERROR"

	// MissingParameter indicates that a required parameter, field, or header
	// is absent.
	MissingParameter Code = "MISSING_PARAMETER"

	// InvalidParameter indicates that a parameter is present but its value is
	// not acceptable (range, enum, reference).
	InvalidParameter Code = "INVALID_PARAMETER"

	// InvalidFormat indicates that a value does not match the expected format
	// (date, identifier, encoding).
	InvalidFormat Code = "INVALID_FORMAT"
)

// Authentication / authorization codes
//
// These distinguish "no credentials", "bad credentials", and "not allowed",
// which is important because HTTP separates 401 from 403.
const (
	// MissingToken indicates that no access token accompanied the request.
	// Maps to HTTP 401.
	MissingToken Code = "MISSING_TOKEN"

	// InvalidToken indicates that a token was presented but failed
	// verification (signature, issuer, audience, shape).
	// Maps to HTTP 401.
	InvalidToken Code = "INVALID_TOKEN"

	// TokenExpired indicates that a structurally valid token is past its
	// lifetime and the caller must re-authenticate.
	// Maps to HTTP 401.
	TokenExpired Code = "TOKEN_EXPIRED"

	// NoResourceAccess indicates that the caller is authenticated but not
	// allowed to touch the target resource.
	// Maps to HTTP 403.
	NoResourceAccess Code = "NO_RESOURCE_ACCESS"

	// OperationNotAllowed indicates that the caller may see the resource but
	// not perform this particular operation on it.
	// Maps to HTTP 403.
	OperationNotAllowed Code = "OPERATION_NOT_ALLOWED"
)

// Resource / state codes
//
// Lookups that missed and state transitions that collided.
const (
	// DataNotFound indicates that the requested entity does not exist in the
	// current scope.
	// Maps to HTTP 404.
	DataNotFound Code = "DATA_NOT_FOUND"

	// TemplateNotFound indicates that a named template could not be located.
	// Maps to HTTP 404.
	TemplateNotFound Code = "TEMPLATE_NOT_FOUND"

	// EndpointNotFound indicates that the requested route or endpoint does
	// not exist.
	// Maps to HTTP 404.
	EndpointNotFound Code = "ENDPOINT_NOT_FOUND"

	// AnswerNotFound indicates that no answer could be produced for the
	// request, typically because a downstream response could not be used.
	// Maps to HTTP 404.
	AnswerNotFound Code = "ANSWER_NOT_FOUND"

	// NoDataAvailable indicates an entity-less state: the request was fine
	// but there is simply nothing to return yet.
	// Maps to HTTP 404.
	NoDataAvailable Code = "NO_DATA_AVAILABLE"

	// DuplicateData indicates that a create collided with an existing entity
	// carrying the same identity.
	// Maps to HTTP 409.
	DuplicateData Code = "DUPLICATE_DATA"

	// DataConflict indicates a state conflict that is not a plain duplicate:
	// concurrent update, version mismatch, incompatible transition.
	// Maps to HTTP 409.
	DataConflict Code = "DATA_CONFLICT"
)

// Payload / catch-all codes
const (
	// PayloadTooLarge indicates that the request body exceeds the accepted
	// size limit.
	// Maps to HTTP 413.
	PayloadTooLarge Code = "PAYLOAD_TOO_LARGE"

	// UnprocessableData indicates that the payload is well-formed but cannot
	// be processed semantically.
	// Maps to HTTP 422.
	UnprocessableData Code = "UNPROCESSABLE_DATA"

	// UnknownEntity indicates that the request names an entity type the
	// service does not know about. Registered at 500; the generic leaf that
	// raises it overrides the status to 406 at construction.
	UnknownEntity Code = "UNKNOWN_ENTITY"

	// UnexpectedError is the catch-all for faults that escaped every other
	// classification.
	// Maps to HTTP 500.
	UnexpectedError Code = "UNEXPECTED_ERROR"
)
