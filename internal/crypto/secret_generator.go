// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	dbPasswordBytes = 16
	secretKeyBytes  = 32
)

// secretGenerator is the private implementation of [SecretGenerator].
type secretGenerator struct {
	// random is the entropy source. Tests substitute a deterministic reader.
	random io.Reader
}

// NewSecretGenerator constructs a [SecretGenerator] backed by the OS CSPRNG.
func NewSecretGenerator() SecretGenerator {
	return &secretGenerator{random: rand.Reader}
}

// GenerateDBPassword implements [SecretGenerator].
func (g *secretGenerator) GenerateDBPassword() (string, error) {
	buf, err := g.read(dbPasswordBytes)
	if err != nil {
		return "", fmt.Errorf("generate db password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GenerateSecretKey implements [SecretGenerator].
func (g *secretGenerator) GenerateSecretKey() (string, error) {
	buf, err := g.read(secretKeyBytes)
	if err != nil {
		return "", fmt.Errorf("generate secret key: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

func (g *secretGenerator) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
