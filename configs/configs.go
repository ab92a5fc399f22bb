package configs

import "github.com/spf13/viper"

type Conf struct {
	Env           string `mapstructure:"APP_ENV"`
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBHost        string `mapstructure:"DB_HOST"`
	DBPort        string `mapstructure:"DB_PORT"`
	DBUser        string `mapstructure:"DB_USER"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME"`
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	AMQPURL       string `mapstructure:"AMQP_URL"`
	WebServerPort string `mapstructure:"WEB_SERVER_PORT"`
	OtelCollector string `mapstructure:"OTEL_COLLECTOR_ADDR"`

	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     string `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	SMSFrom         string `mapstructure:"SMS_FROM"`
	OperatorPhone   string `mapstructure:"OPERATOR_PHONE"`
	OperatorEmail   string `mapstructure:"OPERATOR_EMAIL"`
	NotifyAdminUser bool   `mapstructure:"NOTIFY_ADMIN_USER"`
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
