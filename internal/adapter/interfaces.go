// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Cursion API.
//
// The primary abstraction is [LicenseAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPLicenseAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrLicenseRejected] for a key the server refused,
// [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/cursion-setup/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/license_adapter_mock.go -package=mock

// LicenseAdapter defines transport-agnostic communication with the Cursion
// license endpoint.
type LicenseAdapter interface {
	// VerifyLicense submits key for verification. On success it returns the
	// license together with the service credentials the server provisioned
	// for it, with every value rendered as a string.
	//
	// Returns [ErrLicenseRejected] (wrapped) if the server answered but refused
	// the key, an HTTP sentinel for other non-2xx answers, or a wrapped
	// transport/decode error.
	VerifyLicense(ctx context.Context, key string) (models.License, error)
}
