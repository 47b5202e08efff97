package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/MKhiriev/cursion-setup/models"
)

// Field name constants used to restrict validation to a subset of fields
// (field-level scoping).
const (
	// FieldLicenseKey targets the license key of a [models.SetupAnswers].
	FieldLicenseKey = "license_key"

	// FieldAdminEmail targets the administrator email.
	FieldAdminEmail = "admin_email"

	// FieldAdminPassword targets the administrator password.
	FieldAdminPassword = "admin_password"

	// FieldServerDomain targets the API server domain.
	FieldServerDomain = "server_domain"

	// FieldClientDomain targets the web client domain.
	FieldClientDomain = "client_domain"

	// FieldMCPDomain targets the MCP domain. An empty MCP domain is valid.
	FieldMCPDomain = "mcp_domain"

	// FieldGPTKey targets the OpenAI API key.
	FieldGPTKey = "gpt_key"

	// FieldSecrets targets the locally generated secrets.
	FieldSecrets = "secrets"
)

// SetupValidator checks installer answers before they are written to env
// files. Every value must be a single line since it ends up as one
// KEY=value directive.
type SetupValidator struct {
}

func NewSetupValidator() Validator {
	return &SetupValidator{}
}

// Validate accepts [models.SetupAnswers], [models.AdminCredentials] and
// [models.Domains], by value or pointer.
func (v *SetupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SetupAnswers:
		return v.validateAnswers(value, fields...)
	case *models.SetupAnswers:
		return v.validateAnswers(*value, fields...)

	case models.AdminCredentials:
		return v.validateAdmin(value, fields...)
	case *models.AdminCredentials:
		return v.validateAdmin(*value, fields...)

	case models.Domains:
		return v.validateDomains(value, fields...)
	case *models.Domains:
		return v.validateDomains(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SetupValidator) validateAnswers(answers models.SetupAnswers, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldLicenseKey,
			FieldAdminEmail, FieldAdminPassword,
			FieldServerDomain, FieldClientDomain, FieldMCPDomain,
			FieldGPTKey, FieldSecrets,
		}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldLicenseKey:
			err = requireLine(answers.License.Key, ErrEmptyLicenseKey)
		case FieldAdminEmail, FieldAdminPassword:
			err = v.validateAdmin(answers.Admin, f)
		case FieldServerDomain, FieldClientDomain, FieldMCPDomain:
			err = v.validateDomains(answers.Domains, f)
		case FieldGPTKey:
			err = requireLine(answers.GPTKey, ErrEmptyGPTKey)
		case FieldSecrets:
			if answers.Secrets.DBPassword == "" || answers.Secrets.SecretKey == "" {
				err = ErrEmptySecrets
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

func (v *SetupValidator) validateAdmin(admin models.AdminCredentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAdminEmail, FieldAdminPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldAdminEmail:
			if err := validateEmail(admin.Email); err != nil {
				return err
			}
		case FieldAdminPassword:
			if err := requireLine(admin.Password, ErrEmptyPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SetupValidator) validateDomains(domains models.Domains, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServerDomain, FieldClientDomain, FieldMCPDomain}
	}

	for _, f := range fields {
		switch f {
		case FieldServerDomain:
			if err := validateDomain(domains.Server); err != nil {
				return err
			}
		case FieldClientDomain:
			if err := validateDomain(domains.Client); err != nil {
				return err
			}
		case FieldMCPDomain:
			if domains.MCP == "" {
				continue
			}
			if err := validateDomain(domains.MCP); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// requireLine reports empty when s is blank and ErrMultilineValue when it
// spans lines.
func requireLine(s string, empty error) error {
	if strings.TrimSpace(s) == "" {
		return empty
	}
	if strings.ContainsAny(s, "\r\n") {
		return ErrMultilineValue
	}
	return nil
}

func validateEmail(email string) error {
	if err := requireLine(email, ErrInvalidEmail); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// validateDomain accepts a cleaned domain (see [models.CleanDomain]): a host
// name with an optional port, no scheme remnants and no whitespace.
func validateDomain(domain string) error {
	if domain == "" {
		return ErrInvalidDomain
	}

	if strings.IndexFunc(domain, unicode.IsSpace) >= 0 || strings.Contains(domain, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	lower := strings.ToLower(domain)
	if strings.HasPrefix(lower, "http:") || strings.HasPrefix(lower, "https:") {
		return fmt.Errorf("%w: %q must not include a scheme", ErrInvalidDomain, domain)
	}

	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.HasPrefix(domain, "-") {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}

	return nil
}
