package config

type SMTPConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

func loadSMTPConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:      getEnvAsInt("SMTP_PORT", 465),
		Username:  getEnv("SMTP_USER", ""),
		Password:  getEnv("SMTP_PASS", ""),
		FromEmail: getEnv("SMTP_FROM_EMAIL", "noreply@autoluxe.com"),
		FromName:  getEnv("SMTP_FROM_NAME", "AutoLuxe Security"),
	}
}
