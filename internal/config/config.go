package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	LocalesDir      string
	DefaultLanguage string
	PreferencesFile string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement.
	}

	cfg := &Config{
		LocalesDir:      os.Getenv("JUNIPER_LOCALES_DIR"),
		DefaultLanguage: os.Getenv("JUNIPER_DEFAULT_LANG"),
		PreferencesFile: os.Getenv("JUNIPER_PREFS_FILE"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applique les valeurs par défaut et les règles sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		// Répertoire historique des catalogues, à côté de l'exécutable.
		c.LocalesDir = "locales"
	}

	if strings.TrimSpace(c.DefaultLanguage) == "" {
		c.DefaultLanguage = "fr"
	}
	if _, err := language.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("config: JUNIPER_DEFAULT_LANG invalide (%q): %w", c.DefaultLanguage, err)
	}

	if strings.TrimSpace(c.PreferencesFile) == "" {
		c.PreferencesFile = "juniper_preferences.json"
	}

	return nil
}
