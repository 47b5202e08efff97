// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cursion-setup/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// A refusal of the key becomes ErrInvalidLicense; anything that prevented a
// verdict becomes ErrLicenseServerUnavailable. Cancellation passes through
// untouched so callers can tell an abort from a failure.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled):
		return err

	case errors.Is(err, adapter.ErrLicenseRejected),
		errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrInvalidLicense, err)
	}

	return fmt.Errorf("%w: %w", ErrLicenseServerUnavailable, err)
}
