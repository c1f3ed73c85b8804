package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	// Driver selects the backing store: "mysql" or "sqlite".
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

// AuthConfig holds the front-desk login stub. There is a single operator
// credential configured statically; no user accounts are stored.
type AuthConfig struct {
	Username     string    `mapstructure:"username"`
	PasswordHash string    `mapstructure:"password_hash"`
	JWT          JWTConfig `mapstructure:"jwt"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

// Enabled reports whether SMTP is configured; reminder mail is skipped otherwise.
func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.FromAddress != ""
}

// MembershipConfig holds membership lifecycle tuning.
type MembershipConfig struct {
	// ExpiringThresholdDays is the window before an assignment's end date
	// during which the member is reported as Expiring.
	ExpiringThresholdDays int `mapstructure:"expiring_threshold_days"`
	// Timezone is the business timezone used for date boundary calculations.
	Timezone string `mapstructure:"timezone"`
	// ReminderHourUTC is the UTC hour at which daily maintenance jobs run.
	ReminderHourUTC int `mapstructure:"reminder_hour_utc"`
}
