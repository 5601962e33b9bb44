package config

// Mail settings drive the notification consumer's SMTP delivery.  Sending
// is best-effort throughout the application, so every field has a default
// and a missing mail environment never prevents startup.

// MailConfig holds the outbound SMTP transport settings.
type MailConfig struct {
    Host     string // SMTP server hostname
    Port     int    // SMTP server port
    Username string // SMTP auth username (empty disables auth)
    Password string // SMTP auth password
    Sender   string // From address used on all notifications
}

// LoadMailConfig reads SMTP settings from the environment with sensible
// defaults matching a typical TLS submission setup.
func LoadMailConfig() MailConfig {
    return MailConfig{
        Host:     envStr("MAIL_SERVER", "smtp.gmail.com"),
        Port:     envInt("MAIL_PORT", 587),
        Username: envStr("MAIL_USERNAME", ""),
        Password: envStr("MAIL_PASSWORD", ""),
        Sender:   envStr("MAIL_DEFAULT_SENDER", "noreply@vitahires.com"),
    }
}
