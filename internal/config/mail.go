package config

import "time"

type MailConfig struct {
	MockDelay time.Duration `yaml:"mock_delay"`
	MockFrom  string        `yaml:"mock_from"`
}

func loadMailConfig() *MailConfig {
	return &MailConfig{
		MockDelay: getEnvAsDuration("MAIL_MOCK_DELAY", 1500*time.Millisecond),
		MockFrom:  getEnv("MAIL_MOCK_FROM", "no-reply@autoluxe.com"),
	}
}
