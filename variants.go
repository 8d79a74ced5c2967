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

package faults

import (
	"net/http"

	"apifault.dev/faults/code"
	"apifault.dev/faults/detail"
)

// Leaf fault kinds. Each constructor binds exactly one category and one wire
// code, and formats its message from a detail.Detail. Kinds with no natural
// input carry a fixed message. The (category, code, status) triple of every
// kind is independent of the input value.

// prefixed renders "prefix" for a nil detail and "prefix: <detail>"
// otherwise.
func prefixed(prefix string, d detail.Detail) string {
	if d == nil {
		return prefix
	}
	return prefix + ": " + detail.Render(d)
}

// defaultAccessMessage is the fixed text used by NoResourceAccess when no
// detail is supplied.
const defaultAccessMessage = "access to the requested resource is denied"

// ------ technical kinds (snapshot captured, message exposable)

// InitializationError reports that a component failed to start or prepare
// its working state.
func InitializationError(d detail.Detail) *Error {
	return Technical(code.InitializationError, prefixed("initialization failed", d))
}

// ExecutionError reports that an internal operation failed mid-flight.
func ExecutionError(d detail.Detail) *Error {
	return Technical(code.ExecutionError, prefixed("execution failed", d))
}

// DatabaseError reports a storage-layer failure.
func DatabaseError(d detail.Detail) *Error {
	return Technical(code.DatabaseError, prefixed("database operation failed", d))
}

// DatabaseConnectionError reports that the database could not be reached.
func DatabaseConnectionError() *Error {
	return Technical(code.DatabaseError, "database connection failed")
}

// ConfigurationError reports missing or inconsistent service configuration.
func ConfigurationError(d detail.Detail) *Error {
	return Technical(code.ConfigurationError, prefixed("invalid configuration", d))
}

// CacheError reports a cache-layer failure.
func CacheError(d detail.Detail) *Error {
	return Technical(code.CacheError, prefixed("cache operation failed", d))
}

// SerializationError reports that internal data could not be encoded or
// decoded.
func SerializationError(d detail.Detail) *Error {
	return Technical(code.SerializationError, prefixed("serialization failed", d))
}

// AuthenticationError reports a failure inside the authentication machinery
// itself, as opposed to bad credentials from the caller.
func AuthenticationError(d detail.Detail) *Error {
	return Technical(code.AuthenticationFailed, prefixed("authentication failed", d))
}

// TokenGenerationError reports that an access token could not be issued.
func TokenGenerationError() *Error {
	return Technical(code.AuthenticationFailed, "token generation failed")
}

// UpstreamAPIError reports an unrecoverable failure from an upstream API.
func UpstreamAPIError(d detail.Detail) *Error {
	return Technical(code.UpstreamAPIError, prefixed("upstream API failure", d))
}

// ThirdPartyServiceError reports a misbehaving external service.
func ThirdPartyServiceError(d detail.Detail) *Error {
	return Technical(code.ThirdPartyServiceError, prefixed("third-party service failure", d))
}

// NetworkError reports a transport-level failure toward a remote dependency.
func NetworkError(d detail.Detail) *Error {
	return Technical(code.NetworkError, prefixed("network failure", d))
}

// ------ functional kinds (no snapshot, exposure per kind)

// ValidationError reports payload validation failures. The detail usually
// names the failing fields.
func ValidationError(d detail.Detail) *Error {
	return Functional(code.ValidationError, prefixed("validation failed", d))
}

// MissingParameter reports a required parameter, field, or header that was
// not supplied.
func MissingParameter(d detail.Detail) *Error {
	return Functional(code.MissingParameter, prefixed("missing parameter", d))
}

// MissingHeader reports a required request header that was not supplied.
func MissingHeader(d detail.Detail) *Error {
	return Functional(code.MissingParameter, prefixed("missing header", d))
}

// InvalidParameter reports a parameter whose value is not acceptable.
func InvalidParameter(d detail.Detail) *Error {
	return Functional(code.InvalidParameter, prefixed("invalid parameter", d))
}

// InvalidFormat reports a value that does not match its expected format.
func InvalidFormat(d detail.Detail) *Error {
	return Functional(code.InvalidFormat, prefixed("invalid format", d))
}

// MissingToken reports a request that arrived without an access token.
func MissingToken() *Error {
	return Functional(code.MissingToken, "missing access token")
}

// InvalidToken reports a token that failed verification.
func InvalidToken() *Error {
	return Functional(code.InvalidToken, "invalid access token")
}

// TokenExpired reports a token past its lifetime.
func TokenExpired() *Error {
	return Functional(code.TokenExpired, "access token expired")
}

// InvalidCredentials reports a failed credential check from the caller.
func InvalidCredentials() *Error {
	return Functional(code.AuthenticationFailed, "invalid credentials")
}

// NoResourceAccess reports that the caller may not touch the target
// resource. A nil detail falls back to the fixed default text; otherwise the
// rendered detail becomes the message as-is.
func NoResourceAccess(d detail.Detail) *Error {
	msg := defaultAccessMessage
	if d != nil {
		msg = detail.Render(d)
	}
	return Functional(code.NoResourceAccess, msg)
}

// OperationNotAllowed reports that the caller may see the resource but not
// perform this operation on it.
func OperationNotAllowed(d detail.Detail) *Error {
	return Functional(code.OperationNotAllowed, prefixed("operation not allowed", d))
}

// DataNotFound reports a lookup that missed. The detail names what was
// looked up.
func DataNotFound(d detail.Detail) *Error {
	return Functional(code.DataNotFound, prefixed("data not found", d))
}

// TemplateNotFound reports a named template that could not be located.
func TemplateNotFound() *Error {
	return Functional(code.TemplateNotFound, "template not found")
}

// EndpointNotFound reports a request for a route that does not exist.
func EndpointNotFound(d detail.Detail) *Error {
	return Functional(code.EndpointNotFound, prefixed("endpoint not found", d))
}

// AnswerNotFound reports that no answer could be produced, typically
// because a downstream response could not be parsed. The internal message
// stays server-side; callers see the boundary's generic text.
func AnswerNotFound() *Error {
	return Functional(code.AnswerNotFound, "no answer could be produced for the request",
		WithExact(false))
}

// DuplicateData reports a create that collided with an existing entity.
func DuplicateData(d detail.Detail) *Error {
	return Functional(code.DuplicateData, prefixed("duplicate data", d))
}

// DataConflict reports a state conflict that is not a plain duplicate.
func DataConflict(d detail.Detail) *Error {
	return Functional(code.DataConflict, prefixed("data conflict", d))
}

// StaleData reports an update based on out-of-date state.
func StaleData() *Error {
	return Functional(code.DataConflict, "data is stale, refresh and retry")
}

// ------ generic kinds (no snapshot, fallback text unless opted in,
// status override allowed)

// UnexpectedError is the catch-all for faults that escaped every other
// classification. The internal message is never shown verbatim.
func UnexpectedError(d detail.Detail) *Error {
	return Generic(code.UnexpectedError, prefixed("unexpected error", d))
}

// UnknownEntity reports a request naming an entity type the service does
// not know about. Overrides the registry status: the response is 406, not
// the category's usual 500.
func UnknownEntity(d detail.Detail) *Error {
	return Generic(code.UnknownEntity, prefixed("unknown entity", d),
		WithStatus(http.StatusNotAcceptable), WithExact(true))
}

// NoDataAvailable reports an entity-less state: nothing to return yet.
func NoDataAvailable() *Error {
	return Generic(code.NoDataAvailable, "no data available",
		WithExact(true))
}

// PayloadTooLarge reports a request body over the accepted size limit.
func PayloadTooLarge() *Error {
	return Generic(code.PayloadTooLarge, "payload too large",
		WithExact(true))
}

// UnprocessableData reports a well-formed payload that cannot be processed
// semantically.
func UnprocessableData(d detail.Detail) *Error {
	return Generic(code.UnprocessableData, prefixed("unprocessable data", d),
		WithExact(true))
}
