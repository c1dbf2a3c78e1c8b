package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kasuboski/moviedb/config/mocks"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Storage: Storage{
				Format:   "csv",
				FilePath: "data/movies.csv",
			},
			OMDB: OMDB{
				Scheme: "https",
				Host:   "my-host",
				APIKey: "my-api-key",
			},
			Export: Export{
				TemplatePath: "static/index_template.html",
				OutputPath:   "static/index.html",
				Title:        "Movies Night",
			},
			Server: Server{
				Port: 9090,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("storage.filePath", "data/movies.json")
		cu.SetDefault("omdb.scheme", "https")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			Storage: Storage{
				FilePath: "data/movies.json",
			},
			OMDB: OMDB{
				Scheme: "https",
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("storage.filePath", "data/movies.xml")
		cu.SetDefault("storage.format", "xml")
		_, err := New(cu)
		assert.ErrorContains(t, err, "invalid configuration")
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Storage: Storage{Format: "sqlite", FilePath: "movies.sqlite"},
		Server:  Server{Port: 8080},
	}
	assert.NoError(t, valid.Validate())

	missingPath := valid
	missingPath.Storage.FilePath = ""
	assert.Error(t, missingPath.Validate())

	badPort := valid
	badPort.Server.Port = 70000
	assert.Error(t, badPort.Validate())

	keyWithoutHost := valid
	keyWithoutHost.OMDB = OMDB{Scheme: "https", APIKey: "key"}
	assert.Error(t, keyWithoutHost.Validate())
}

func TestOMDB(t *testing.T) {
	o := OMDB{Scheme: "https", Host: "www.omdbapi.com"}
	assert.False(t, o.Enabled())
	assert.Equal(t, "https://www.omdbapi.com", o.URL())

	o.APIKey = "key"
	assert.True(t, o.Enabled())
}
