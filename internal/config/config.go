package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"mspro-labs/cupnote/internal/labelparser"
)

// AppConfig holds infrastructure config from standard env vars
type AppConfig struct {
	DBPath       string
	ConfigPath   string // Path to the YAML config file
	GeminiAPIKey string
	Addr         string
}

// FileConfig is everything that can be set from the YAML file.
type FileConfig struct {
	Parser     labelparser.Tables                      `yaml:"parser"`
	Limits     map[labelparser.Field]labelparser.Bound `yaml:"limits"`
	Recognizer RecognizerConfig                        `yaml:"recognizer"`
	Site       *SiteConfig                             `yaml:"site"`
}

// RecognizerConfig selects and tunes the OCR engine used by `scan`.
type RecognizerConfig struct {
	Engine    string   `yaml:"engine"` // "tesseract" or "gemini"
	Languages []string `yaml:"languages"`
	Tessdata  string   `yaml:"tessdata"`
	MinWidth  int      `yaml:"min_width"`
	Model     string   `yaml:"model"`
	Workers   int      `yaml:"workers"`
}

// SiteConfig holds all target-site specific settings (from YAML)
type SiteConfig struct {
	Roastery           string    `yaml:"roastery"`
	CategoryURL        string    `yaml:"category_url"`
	MaxProducts        int       `yaml:"max_products"`
	Selectors          Selectors `yaml:"selectors"`
	DisallowedKeywords []string  `yaml:"disallowed_keywords"`
}

type Selectors struct {
	CookieButton    string `yaml:"cookie_button"`
	NewsletterPopup string `yaml:"newsletter_popup"`
	ProductListWait string `yaml:"product_list_wait"`
	ProductRow      string `yaml:"product_row"`
	Link            string `yaml:"link"`
	Title           string `yaml:"title"`
	SpecRow         string `yaml:"spec_row"`
	SpecCell        string `yaml:"spec_cell"`
	Description     string `yaml:"description"`
}

// GetAppConfig reads basic infrastructure settings from environment variables.
func GetAppConfig() (AppConfig, error) {
	dbPath := os.Getenv("DB_PATH")
	configPath := os.Getenv("CONFIG_PATH")
	addr := os.Getenv("ADDR")

	// Set defaults if not provided
	if dbPath == "" {
		dbPath = "./local-data/cupnote.db"
	}
	if configPath == "" {
		configPath = "config.yaml"
	}
	if addr == "" {
		addr = ":8080"
	}

	return AppConfig{
		DBPath:       dbPath,
		ConfigPath:   configPath,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Addr:         addr,
	}, nil
}

// LoadFileConfig reads the YAML file. A missing file yields the defaults.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := &FileConfig{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg.withDefaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadSiteConfig returns the `site` section, which the scraper requires.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	cfg, err := LoadFileConfig(path)
	if err != nil {
		return nil, err
	}
	if cfg.Site == nil || cfg.Site.CategoryURL == "" {
		return nil, fmt.Errorf("config file '%s' has no site.category_url", path)
	}
	return cfg.Site, nil
}

func (c *FileConfig) withDefaults() *FileConfig {
	if c.Recognizer.Engine == "" {
		c.Recognizer.Engine = "tesseract"
	}
	if len(c.Recognizer.Languages) == 0 {
		c.Recognizer.Languages = []string{"eng", "kor"}
	}
	if c.Recognizer.MinWidth == 0 {
		c.Recognizer.MinWidth = 1600
	}
	if c.Recognizer.Model == "" {
		c.Recognizer.Model = "gemini-1.5-flash"
	}
	if c.Recognizer.Workers <= 0 {
		c.Recognizer.Workers = 2
	}
	return c
}

// NewParser builds the label parser from the defaults plus any overrides.
func (c *FileConfig) NewParser() (*labelparser.Parser, error) {
	p, err := labelparser.New(labelparser.DefaultTables().Merge(c.Parser))
	if err != nil {
		return nil, fmt.Errorf("invalid parser tables: %w", err)
	}
	return p, nil
}
