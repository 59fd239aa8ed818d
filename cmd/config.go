package cmd

// Config holds all application settings, populated from environment
// variables. Pricing settings carry defaults so a bare environment still
// yields a working engine.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	FreeShippingThreshold string `env:"FREE_SHIPPING_THRESHOLD" envDefault:"500"`
	DefaultShippingCharge string `env:"DEFAULT_SHIPPING_CHARGE" envDefault:"50"`
}
