package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// DataConfig describes where the station and trip datasets come from.
// Source selects the backend; URL/path fields belonging to other backends
// are ignored.
type DataConfig struct {
	Source      string `yaml:"source" validate:"omitempty,oneof=http file sqlite postgres"`
	StationsURL string `yaml:"stationsURL"`
	TripsURL    string `yaml:"tripsURL"`
	SQLitePath  string `yaml:"sqlitePath"`
	PostgresURL string `yaml:"postgresURL"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Data   DataConfig   `yaml:"data" validate:"required"`
}
