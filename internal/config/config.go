package config

import (
	"fmt"

	"github.com/internmatch/internmatch/internal/match"
)

// Config represents the application configuration
type Config struct {
	Catalog    CatalogConfig    `toml:"catalog"`
	Database   DatabaseConfig   `toml:"database"`
	Classifier ClassifierConfig `toml:"classifier"`
	Weights    WeightsConfig    `toml:"weights"`
	Hybrid     HybridConfig     `toml:"hybrid"`
	Server     ServerConfig     `toml:"server"`
}

// CatalogConfig locates the internship catalog and the career
// reference dataset
type CatalogConfig struct {
	// Source selects where internships are read from: "file" or "sqlite"
	Source      string `toml:"source"`
	Path        string `toml:"path"`
	CareersPath string `toml:"careers_path"`
}

// DatabaseConfig contains sqlite settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ClassifierConfig contains classification service settings
type ClassifierConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// WeightsConfig holds the rule-based scoring weights
type WeightsConfig struct {
	Skills      float64 `toml:"skills"`
	Interests   float64 `toml:"interests"`
	Education   float64 `toml:"education"`
	Location    float64 `toml:"location"`
	RemoteBonus float64 `toml:"remote_bonus"`
}

// ToWeights converts the section into scorer weights
func (w WeightsConfig) ToWeights() match.Weights {
	return match.Weights{
		Skills:      w.Skills,
		Interests:   w.Interests,
		Education:   w.Education,
		Location:    w.Location,
		RemoteBonus: w.RemoteBonus,
	}
}

// HybridConfig holds hybrid recommender settings
type HybridConfig struct {
	TopN            int     `toml:"top_n"`
	SkillsBoost     float64 `toml:"skills_boost"`
	InterestsBoost  float64 `toml:"interests_boost"`
	EducationBoost  float64 `toml:"education_boost"`
	DropNonPositive bool    `toml:"drop_non_positive"`
}

// ToHybrid converts the section into hybrid recommender settings
func (h HybridConfig) ToHybrid() match.HybridConfig {
	return match.HybridConfig{
		TopN: h.TopN,
		Boost: match.BoostWeights{
			Skills:    h.SkillsBoost,
			Interests: h.InterestsBoost,
			Education: h.EducationBoost,
		},
		DropNonPositive: h.DropNonPositive,
	}
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// ClassifierURL returns the full URL for the classifier service
func (c *Config) ClassifierURL() string {
	return fmt.Sprintf("%s:%d", c.Classifier.Host, c.Classifier.Port)
}

// Default returns a Config with sensible defaults
func Default() *Config {
	weights := match.DefaultWeights()
	boost := match.DefaultBoostWeights()

	return &Config{
		Catalog: CatalogConfig{
			Source:      "file",
			Path:        "~/.local/share/internmatch/internships.json",
			CareersPath: "~/.local/share/internmatch/careers.csv",
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/internmatch/internmatch.db",
		},
		Classifier: ClassifierConfig{
			Host: "http://localhost",
			Port: 8643,
		},
		Weights: WeightsConfig{
			Skills:      weights.Skills,
			Interests:   weights.Interests,
			Education:   weights.Education,
			Location:    weights.Location,
			RemoteBonus: weights.RemoteBonus,
		},
		Hybrid: HybridConfig{
			TopN:           3,
			SkillsBoost:    boost.Skills,
			InterestsBoost: boost.Interests,
			EducationBoost: boost.Education,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
