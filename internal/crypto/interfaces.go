// Package crypto generates the random secrets written into a fresh
// deployment: the database password and the application signing key.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_generator_mock.go -package=mock

// SecretGenerator produces the deployment secrets. Every call returns fresh
// values drawn from a CSPRNG; nothing is persisted.
type SecretGenerator interface {
	// GenerateDBPassword returns a URL-safe password built from 16 random
	// bytes (unpadded base64url, 22 characters).
	GenerateDBPassword() (string, error)

	// GenerateSecretKey returns a signing key built from 32 random bytes
	// (padded base64url, 44 characters).
	GenerateSecretKey() (string, error)
}
