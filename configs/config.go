package configs

import "path/filepath"

// AppConfig is the application configuration decoded from defaults.yaml.
type AppConfig struct {
	Data DataConfig `yaml:"data"`
	Auth AuthConfig `yaml:"auth"`
}

// DataConfig locates the backing files of the stores.
type DataConfig struct {
	Dir              string `yaml:"dir"`
	MoviesFile       string `yaml:"moviesFile"`
	CredentialsFile  string `yaml:"credentialsFile"`
	FavoritesFile    string `yaml:"favoritesFile"`
	WatchHistoryFile string `yaml:"watchHistoryFile"`
}

// MoviesPath returns the movies file location under the data directory.
func (c DataConfig) MoviesPath() string {
	return filepath.Join(c.Dir, c.MoviesFile)
}

// CredentialsPath returns the credentials file location.
func (c DataConfig) CredentialsPath() string {
	return filepath.Join(c.Dir, c.CredentialsFile)
}

// FavoritesPath returns the favorites file location.
func (c DataConfig) FavoritesPath() string {
	return filepath.Join(c.Dir, c.FavoritesFile)
}

// WatchHistoryPath returns the watch-history file location.
func (c DataConfig) WatchHistoryPath() string {
	return filepath.Join(c.Dir, c.WatchHistoryFile)
}

// AuthConfig holds credential hashing, session token and login throttling
// settings.
type AuthConfig struct {
	BcryptCost        int         `yaml:"bcryptCost"`
	SessionSecret     string      `yaml:"sessionSecret"`
	SessionTTLMinutes int         `yaml:"sessionTtlMinutes"`
	LoginRateLimit    int         `yaml:"loginRateLimit"`
	LoginRateBurst    int         `yaml:"loginRateBurst"`
	Admin             AdminConfig `yaml:"admin"`
}

// AdminConfig is the administrator account seeded on startup.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}
