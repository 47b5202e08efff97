package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLicenseKey = errors.New("license key is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidDomain   = errors.New("invalid domain")
	ErrEmptyGPTKey     = errors.New("OpenAI key is required")
	ErrEmptySecrets    = errors.New("generated secrets are required")
	ErrMultilineValue  = errors.New("value must be a single line")
)
