// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/staranto/awsqgo/internal/pager"
)

// ErrorContext describes what was being attempted when an AWS call failed.
type ErrorContext struct {
	Service   string
	Operation string
	Region    string
	Profile   string
}

// FriendlyError is an AWS failure reduced to the facts a user can act on.
// The original error stays reachable through Unwrap.
type FriendlyError struct {
	Context    ErrorContext
	Code       string
	Message    string
	Fault      string
	StatusCode int
	RequestID  string
	Page       int
	Emitted    int
	Err        error
}

// Error implements the error interface.
func (e *FriendlyError) Error() string {
	var b strings.Builder

	b.WriteString(e.Context.Service)
	if e.Context.Operation != "" {
		b.WriteString(" " + e.Context.Operation)
	}
	if e.Context.Region != "" {
		b.WriteString(" in " + e.Context.Region)
	}
	b.WriteString(" failed")

	if e.Page > 1 {
		fmt.Fprintf(&b, " on page %d after %d items", e.Page, e.Emitted)
	}

	if e.Code != "" {
		b.WriteString(": " + e.Code)
		if e.Message != "" {
			b.WriteString(": " + e.Message)
		}
	} else if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}

	var details []string
	if e.StatusCode != 0 {
		details = append(details, fmt.Sprintf("status %d", e.StatusCode))
	}
	if e.Fault != "" && e.Fault != smithy.FaultUnknown.String() {
		details = append(details, e.Fault+" fault")
	}
	if e.RequestID != "" {
		details = append(details, "request id "+e.RequestID)
	}
	if len(details) > 0 {
		b.WriteString(" (" + strings.Join(details, ", ") + ")")
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *FriendlyError) Unwrap() error {
	return e.Err
}

// Friendly converts an error returned from a paginated AWS call into a
// FriendlyError. Service and operation names reported by the SDK take
// precedence over ec. nil stays nil.
func Friendly(err error, ec ErrorContext) error {
	if err == nil {
		return nil
	}

	fe := &FriendlyError{Context: ec, Err: err}

	var pe *pager.PageError
	if errors.As(err, &pe) {
		fe.Page = pe.Page
		fe.Emitted = pe.Emitted
	}

	var oe *smithy.OperationError
	if errors.As(err, &oe) {
		if oe.Service() != "" {
			fe.Context.Service = oe.Service()
		}
		if oe.Operation() != "" {
			fe.Context.Operation = oe.Operation()
		}
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		fe.Code = ae.ErrorCode()
		fe.Message = ae.ErrorMessage()
		fe.Fault = ae.ErrorFault().String()
	}

	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		fe.StatusCode = re.HTTPStatusCode()
		fe.RequestID = re.ServiceRequestID()
	}

	if fe.Context.Service == "" {
		fe.Context.Service = "aws"
	}

	return fe
}
