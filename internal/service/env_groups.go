package service

import (
	"slices"

	"github.com/MKhiriev/cursion-setup/models"
)

// LicenseDataKeys are the server variables provisioned by the license API.
// Keys the API returns outside this list are ignored.
var LicenseDataKeys = []string{
	"GOOGLE_CRUX_KEY",
	"TWILIO_SID",
	"TWILIO_AUTH_TOKEN",
	"SENDGRID_API_KEY",
	"DEFAULT_TEMPLATE",
	"DEFAULT_TEMPLATE_NO_BUTTON",
	"AUTOMATION_TEMPLATE",
	"SLACK_APP_ID",
	"SLACK_CLIENT_ID",
	"SLACK_CLIENT_SECRET",
	"SLACK_SIGNING_SECRET",
	"SLACK_VERIFICATION_TOKEN",
	"SLACK_BOT_TOKEN",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
}

// secretKeyPrefix marks the Django secret as self-generated.
const secretKeyPrefix = "django-insecure-"

// filterLicenseData keeps only the entries of data named in LicenseDataKeys.
func filterLicenseData(data map[string]string) (kept map[string]string, ignored []string) {
	kept = make(map[string]string, len(LicenseDataKeys))
	for k, v := range data {
		if slices.Contains(LicenseDataKeys, k) {
			kept[k] = v
			continue
		}
		ignored = append(ignored, k)
	}
	slices.Sort(ignored)
	return kept, ignored
}

// serverOverrides builds the .server.env group. API-provided keys missing
// from the license data are written empty.
func serverOverrides(a models.SetupAnswers) models.OverrideSet {
	email := a.Admin.Email

	set := models.NewOverrideSet(
		models.Override{Key: "CLIENT_URL_ROOT", Value: a.Domains.ClientURL()},
		models.Override{Key: "API_URL_ROOT", Value: a.Domains.ServerURL()},
		models.Override{Key: "LETSENCRYPT_EMAIL", Value: email},
		models.Override{Key: "LETSENCRYPT_HOST", Value: a.Domains.Server},
		models.Override{Key: "DEFAULT_EMAIL", Value: email},
		models.Override{Key: "VIRTUAL_HOST", Value: a.Domains.Server},
		models.Override{Key: "ADMIN_PASS", Value: a.Admin.Password},
		models.Override{Key: "ADMIN_EMAIL", Value: email},
		models.Override{Key: "LICENSE_KEY", Value: a.License.Key},
	)

	for _, key := range LicenseDataKeys {
		set = set.With(key, a.License.Data[key])
	}

	set = set.WithAll(models.NewOverrideSet(
		models.Override{Key: "GPT_API_KEY", Value: a.GPTKey},
		models.Override{Key: "DB_PASS", Value: a.Secrets.DBPassword},
		models.Override{Key: "POSTGRES_PASSWORD", Value: a.Secrets.DBPassword},
		models.Override{Key: "SECRETS_KEY", Value: a.Secrets.SecretKey},
		models.Override{Key: "SECRET_KEY", Value: secretKeyPrefix + a.Secrets.SecretKey},
		models.Override{Key: "ADMIN_USER", Value: models.DefaultAdminUser},
	))

	if a.Domains.MCP != "" {
		set = set.With("MCP_URL_ROOT", a.Domains.MCPURL())
	}

	return set
}

// clientOverrides builds the .client.env group.
func clientOverrides(a models.SetupAnswers) models.OverrideSet {
	return models.NewOverrideSet(
		models.Override{Key: "REACT_APP_SERVER_URL", Value: a.Domains.ServerURL()},
		models.Override{Key: "REACT_APP_CLIENT_URL", Value: a.Domains.ClientURL()},
		models.Override{Key: "LETSENCRYPT_EMAIL", Value: a.Admin.Email},
		models.Override{Key: "LETSENCRYPT_HOST", Value: a.Domains.Client},
		models.Override{Key: "VIRTUAL_HOST", Value: a.Domains.Client},
	)
}

// mcpOverrides builds the .mcp.env group. It is empty when no MCP domain was
// configured.
func mcpOverrides(a models.SetupAnswers) models.OverrideSet {
	if a.Domains.MCP == "" {
		return models.OverrideSet{}
	}

	return models.NewOverrideSet(
		models.Override{Key: "MCP_URL_ROOT", Value: a.Domains.MCPURL()},
		models.Override{Key: "API_URL_ROOT", Value: a.Domains.ServerURL()},
		models.Override{Key: "LETSENCRYPT_EMAIL", Value: a.Admin.Email},
		models.Override{Key: "LETSENCRYPT_HOST", Value: a.Domains.MCP},
		models.Override{Key: "VIRTUAL_HOST", Value: a.Domains.MCP},
	)
}
