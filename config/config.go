package config

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Storage Storage `json:"storage" yaml:"storage" mapstructure:"storage"`
	OMDB    OMDB    `json:"omdb" yaml:"omdb" mapstructure:"omdb"`
	Export  Export  `json:"export" yaml:"export" mapstructure:"export"`
	Server  Server  `json:"server" yaml:"server" mapstructure:"server"`
}

// Storage selects the catalog backend. FilePath is the flat file or the sqlite database.
type Storage struct {
	Format   string `json:"format" yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json csv yaml sqlite"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

// OMDB configures the metadata lookup. An empty APIKey disables it.
type OMDB struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host   string `json:"host" yaml:"host" mapstructure:"host" validate:"required_with=APIKey"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

type Export struct {
	TemplatePath string `json:"templatePath" yaml:"templatePath" mapstructure:"templatePath"`
	OutputPath   string `json:"outputPath" yaml:"outputPath" mapstructure:"outputPath"`
	Title        string `json:"title" yaml:"title" mapstructure:"title"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Enabled reports whether movies can be looked up by title
func (o OMDB) Enabled() bool {
	return o.APIKey != ""
}

// URL is the service root the client sends requests to
func (o OMDB) URL() string {
	u := url.URL{
		Scheme: o.Scheme,
		Host:   o.Host,
	}
	return u.String()
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks the values the commands depend on
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
