package config

import (
	"os"
	"strings"
)

// AdminConfig lists the accounts allowed to manage the problem catalog
type AdminConfig struct {
	// Emails are lower cased, matching ignores case
	Emails []string
}

// NewAdminConfig reads the comma separated ADMIN_EMAILS, falling back to a
// single ADMIN_EMAIL
func NewAdminConfig() *AdminConfig {
	var emails []string
	for _, email := range strings.Split(getEnv("ADMIN_EMAILS", os.Getenv("ADMIN_EMAIL")), ",") {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			emails = append(emails, email)
		}
	}
	return &AdminConfig{Emails: emails}
}

func (c *AdminConfig) IsAdmin(email string) bool {
	if c == nil || email == "" {
		return false
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, admin := range c.Emails {
		if admin == email {
			return true
		}
	}
	return false
}
