package client

import "github.com/MKhiriev/cursion-setup/models"

const (
	labelLicenseKey      = "  Enter your license key"
	labelAdminEmail      = "  Enter an admin email address"
	labelAdminPassword   = "  Create an admin password"
	labelConfirmPassword = "  Confirm admin password"
	labelServerDomain    = "  Enter your Server domain (e.g. api.example.com)"
	labelClientDomain    = "  Enter your Client domain (e.g. app.example.com)"
	labelMCPDomain       = "  Enter your MCP domain (e.g. mcp.example.com)"
	labelGPTKey          = "  Enter your OpenAI API Key"

	msgLicenseVerified  = "License is verified"
	msgLicenseIncorrect = "incorrect license key"
	msgPasswordMismatch = "passwords do not match"
	msgDomainsUpdated   = "Domains updated"
	msgMCPUpdated       = "MCP domain updated"
	msgGPTKeyAdded      = "OpenAI key added"
	msgGPTKeyMissing    = "OpenAI key missing"
	msgComplete         = "Configuration complete!"

	maskedPassword = "•••••••••••••••••••••••••••"
)

func domainsConfirmLabel(serverURL, clientURL string) string {
	return "  Does this look correct?  (" + serverURL + ")  (" + clientURL + ") "
}

func credentialsUpdated(email string) string {
	return "Credentials updated:\n" +
		"  username    : " + models.DefaultAdminUser + "\n" +
		"  email       : " + email + "\n" +
		"  password    : " + maskedPassword
}
