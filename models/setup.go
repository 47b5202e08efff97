// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DefaultAdminUser is the username of the administrator account created by the
// installer.
const DefaultAdminUser = "admin"

// AdminCredentials are the confirmed administrator email and password.
type AdminCredentials struct {
	Email    string
	Password string
}

// Domains holds the confirmed public domains of the deployment. Values are
// bare host names without scheme or slashes.
type Domains struct {
	Server string
	Client string
	// MCP is empty when the MCP service is not configured.
	MCP string
}

// CleanDomain trims whitespace and strips every '/' from a user-supplied
// domain, so "api.example.com/" becomes "api.example.com".
func CleanDomain(domain string) string {
	return strings.ReplaceAll(strings.TrimSpace(domain), "/", "")
}

// DomainURL returns the https URL for a cleaned domain.
func DomainURL(domain string) string {
	return "https://" + domain
}

// ServerURL returns the https URL of the server domain.
func (d Domains) ServerURL() string { return DomainURL(d.Server) }

// ClientURL returns the https URL of the client domain.
func (d Domains) ClientURL() string { return DomainURL(d.Client) }

// MCPURL returns the https URL of the MCP domain, or "" if MCP is disabled.
func (d Domains) MCPURL() string {
	if d.MCP == "" {
		return ""
	}
	return DomainURL(d.MCP)
}

// GeneratedSecrets are the values the installer creates locally.
type GeneratedSecrets struct {
	// DBPassword is shared by DB_PASS and POSTGRES_PASSWORD.
	DBPassword string
	// SecretKey is the url-safe base64 application secret.
	SecretKey string
}

// SetupAnswers is the complete, validated result of an installer session.
// It is assembled only after every step has succeeded and is never mutated
// afterwards.
type SetupAnswers struct {
	License License
	Admin   AdminCredentials
	Domains Domains
	GPTKey  string
	Secrets GeneratedSecrets
}
