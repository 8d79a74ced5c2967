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

package grpcx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/anypb"

	"apifault.dev/faults"
	"apifault.dev/faults/adapter"
)

// Domain is the logical error domain stamped into ErrorInfo details so
// clients can tell these faults apart from statuses produced elsewhere.
const Domain = "apifault.dev"

// grpcCodeFor projects a fault's HTTP status onto the canonical gRPC code
// space. The fault's own status is the source of truth (it was resolved
// once at construction); this table is only the transport projection.
func grpcCodeFor(httpStatus int) gcodes.Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return gcodes.InvalidArgument
	case http.StatusUnauthorized:
		return gcodes.Unauthenticated
	case http.StatusForbidden:
		return gcodes.PermissionDenied
	case http.StatusNotFound:
		return gcodes.NotFound
	case http.StatusNotAcceptable:
		return gcodes.InvalidArgument
	case http.StatusConflict:
		return gcodes.AlreadyExists
	case http.StatusRequestEntityTooLarge:
		return gcodes.ResourceExhausted
	case http.StatusUnprocessableEntity:
		return gcodes.InvalidArgument
	case http.StatusBadGateway:
		return gcodes.Unavailable
	default:
		return gcodes.Internal
	}
}

// UnaryServerInterceptor returns a grpc.UnaryServerInterceptor that maps
// faults into gRPC statuses.
//
// The status message and the ErrorInfo metadata go through the same exposure
// rule as the HTTP body (adapter.ToView): non-exact messages become the
// fallback text and structured fields are withheld. The diagnostic snapshot
// never leaves the process.
//
// Errors that are not faults are returned as-is — some other layer owns
// them.
func UnaryServerInterceptor(fallback string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var fe *faults.Error
		if !errors.As(err, &fe) {
			// Not ours — return as-is.
			return nil, err
		}

		view := adapter.ToView(fe, fallback)
		base := gstatus.New(grpcCodeFor(fe.Status), view.Message)

		ei := &errdetails.ErrorInfo{
			Reason:   view.Code,
			Domain:   Domain,
			Metadata: stringify(view.Fields),
		}

		// Try to attach ErrorInfo as details. If it fails — return base.
		if anyInfo, aerr := anypb.New(ei); aerr == nil {
			if with, werr := base.WithDetails(anyInfo); werr == nil {
				return nil, with.Err()
			}
		}

		return nil, base.Err()
	}
}

// ExtractErrorInfo pulls the ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// stringify flattens a structured field map into the string/string form
// ErrorInfo metadata requires.
func stringify(fields map[string]any) map[string]string {
	if len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = fmt.Sprint(v)
	}
	return out
}
