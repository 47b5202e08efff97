package models

// LicenseRequest is the body sent to the license verification endpoint.
type LicenseRequest struct {
	// LicenseKey is the key entered by the operator.
	LicenseKey string `json:"license_key"`
}

// LicenseResponse is the body returned by the license verification endpoint.
type LicenseResponse struct {
	// Success is true when the key is valid.
	Success bool `json:"success"`

	// Data holds the service credentials provisioned for the license, keyed by
	// the environment variable they are written to (e.g. "TWILIO_SID").
	Data map[string]any `json:"data,omitempty"`

	// Message is an optional human-readable reason for a rejection.
	Message string `json:"message,omitempty"`
}

// License is a verified license key together with the credentials the
// license server provisioned for it.
type License struct {
	Key  string
	Data map[string]string
}
