package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/lacnutry/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		Version         string `json:"version"`
		Timezone        string `json:"timezone"`
		LogLevel        string `json:"log_level"`
		LogFile         string `json:"log_file"`
		HistoryCapacity int    `json:"history_capacity"`
		QueueSize       int    `json:"queue_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Path string `json:"path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ReceiptAddress    string   `json:"receipt_address"`
		HashKey           string   `json:"hash_key"`
		EntitlementKey    string   `json:"entitlement_key"`
		EntitlementIssuer string   `json:"entitlement_issuer"`
		QuizAddress       string   `json:"quiz_address"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	TextGen struct {
		Provider  string `json:"provider"`
		BaseURL   string `json:"base_url"`
		APIKey    string `json:"api_key"`
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
	} `json:"textgen,omitempty"`

	Billing struct {
		Provider     string        `json:"provider"`
		SandboxDelay Duration      `json:"sandbox_delay"`
		Plans        []models.Plan `json:"plans"`
	} `json:"billing,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:         jsonCfg.App.Version,
			Timezone:        jsonCfg.App.Timezone,
			LogLevel:        jsonCfg.App.LogLevel,
			LogFile:         jsonCfg.App.LogFile,
			HistoryCapacity: jsonCfg.App.HistoryCapacity,
			QueueSize:       jsonCfg.App.QueueSize,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Path: jsonCfg.Storage.Files.Path,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			ReceiptAddress:    jsonCfg.Adapter.ReceiptAddress,
			HashKey:           jsonCfg.Adapter.HashKey,
			EntitlementKey:    jsonCfg.Adapter.EntitlementKey,
			EntitlementIssuer: jsonCfg.Adapter.EntitlementIssuer,
			QuizAddress:       jsonCfg.Adapter.QuizAddress,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		TextGen: TextGen{
			Provider:  jsonCfg.TextGen.Provider,
			BaseURL:   jsonCfg.TextGen.BaseURL,
			APIKey:    jsonCfg.TextGen.APIKey,
			Model:     jsonCfg.TextGen.Model,
			MaxTokens: jsonCfg.TextGen.MaxTokens,
		},
		Billing: Billing{
			Provider:     jsonCfg.Billing.Provider,
			SandboxDelay: time.Duration(jsonCfg.Billing.SandboxDelay),
			Plans:        jsonCfg.Billing.Plans,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
