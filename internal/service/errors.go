package service

import "errors"

var (
	ErrEmptyLicenseKey          = errors.New("license key is empty")
	ErrInvalidLicense           = errors.New("incorrect license key")
	ErrLicenseServerUnavailable = errors.New("license server unavailable")

	ErrGenerateSecrets = errors.New("failed to generate secrets")

	ErrInvalidAnswers = errors.New("invalid setup answers")
	ErrUnknownGroup   = errors.New("unknown variable group")
	ErrEnvMismatch    = errors.New("env file does not hold the written value")
)
