package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Backends soportados para la carta.
const (
	MenuBackendXLSX     = "xlsx"
	MenuBackendPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Menu    MenuConfig
	DB      DBConfig
	Admin   AdminConfig
	JWT     JWTConfig
	Receipt ReceiptConfig
	Session SessionConfig
	Browser BrowserConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LocalURL URL para abrir la UI en el navegador de la misma máquina.
func (c HTTPConfig) LocalURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// MenuConfig origen de la carta.
type MenuConfig struct {
	Backend string // xlsx | postgres
	Path    string // archivo .xlsx cuando Backend = xlsx
}

// DBConfig configuración de PostgreSQL (solo con MENU_BACKEND=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// AdminConfig contraseña compartida del panel de administración.
type AdminConfig struct {
	Password string
}

// JWTConfig configuración del token de administrador.
type JWTConfig struct {
	Secret     string // vacío = se genera uno aleatorio al arrancar
	Expiration int    // minutos
	Issuer     string
}

// ReceiptConfig datos impresos en el recibo y política de cálculo.
type ReceiptConfig struct {
	TaxRate    decimal.Decimal // porcentaje
	Discount   decimal.Decimal
	ShopName   string
	ShopLine   string
	Footer     string
	Currency   string
	PDFEnabled bool
}

// SessionConfig vida de las sesiones de caja.
type SessionConfig struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
}

// BrowserConfig apertura automática de la UI al arrancar.
type BrowserConfig struct {
	Open  bool
	Delay time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, MENU_PATH, ADMIN_PASSWORD, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: config.env en el directorio actual o ./config
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := getString(v, "APP_ENV", "development")

	taxRate, err := getDecimal(v, "RECEIPT_TAX_RATE", decimal.NewFromInt(5))
	if err != nil {
		return nil, err
	}
	discount, err := getDecimal(v, "RECEIPT_DISCOUNT", decimal.Zero)
	if err != nil {
		return nil, err
	}
	if taxRate.IsNegative() || discount.IsNegative() {
		return nil, fmt.Errorf("config: RECEIPT_TAX_RATE y RECEIPT_DISCOUNT no pueden ser negativos")
	}

	cfg := &Config{
		App: AppConfig{
			Env:      env,
			Name:     getString(v, "APP_NAME", "dhaliwal-pos"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8501),
		},
		Menu: MenuConfig{
			Backend: strings.ToLower(getString(v, "MENU_BACKEND", MenuBackendXLSX)),
			Path:    getString(v, "MENU_PATH", "DhalisMenu.xlsx"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "dhaliwal_pos"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Admin: AdminConfig{
			Password: getString(v, "ADMIN_PASSWORD", "admin123"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "dhaliwal-pos"),
		},
		Receipt: ReceiptConfig{
			TaxRate:    taxRate,
			Discount:   discount,
			ShopName:   getString(v, "RECEIPT_SHOP_NAME", "Dhaliwal's Food Court"),
			ShopLine:   getString(v, "RECEIPT_SHOP_LINE", "Meerut, UP | Ph: +91-9259317713"),
			Footer:     getString(v, "RECEIPT_FOOTER", "Thank you for visiting!"),
			Currency:   getString(v, "RECEIPT_CURRENCY", "Rs."),
			PDFEnabled: getBool(v, "RECEIPT_PDF_ENABLED", true),
		},
		Session: SessionConfig{
			IdleTimeout:   time.Duration(getInt(v, "SESSION_IDLE_MINUTES", 240)) * time.Minute,
			SweepInterval: time.Duration(getInt(v, "SESSION_SWEEP_SECONDS", 60)) * time.Second,
		},
		Browser: BrowserConfig{
			Open:  getBool(v, "BROWSER_OPEN", env == "development"),
			Delay: time.Duration(getInt(v, "BROWSER_DELAY_MS", 1000)) * time.Millisecond,
		},
	}

	if cfg.Menu.Backend != MenuBackendXLSX && cfg.Menu.Backend != MenuBackendPostgres {
		return nil, fmt.Errorf("config: MENU_BACKEND desconocido %q (xlsx | postgres)", cfg.Menu.Backend)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido: %w", key, err)
	}
	return d, nil
}
