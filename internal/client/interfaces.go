// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive installer session.
//
// It drives the prompts, verifies the license, collects the admin account,
// domains and OpenAI key, and hands the validated answers to the env service.
package client

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/prompter_mock.go -package=mock

// Prompter is the terminal surface used by the installer session.
type Prompter interface {
	// Welcome prints the banner.
	Welcome()
	// Prompt reads one line. Visible answers are trimmed; hidden ones are
	// returned as typed and not echoed.
	Prompt(ctx context.Context, label string, hidden bool) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, label string) (bool, error)
	// Success prints a positive status line.
	Success(msg string)
	// Failure prints a negative status line.
	Failure(msg string)
}

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the session and blocks until it completes or fails.
	Run(ctx context.Context) error
}
