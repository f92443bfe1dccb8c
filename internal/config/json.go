package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		SessionSigningKey string   `json:"session_signing_key"`
		SessionDuration   Duration `json:"session_duration"`
		OwnerTokenSignKey string   `json:"owner_token_sign_key"`
		OwnerTokenIssuer  string   `json:"owner_token_issuer"`
		Version           string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Dir string `json:"dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Endpoint        string `json:"endpoint"`
			Region          string `json:"region"`
			Bucket          string `json:"bucket"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			UsePathStyle    bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
			SessionSigningKey: jsonCfg.App.SessionSigningKey,
			SessionDuration:   time.Duration(jsonCfg.App.SessionDuration),
			OwnerTokenSignKey: jsonCfg.App.OwnerTokenSignKey,
			OwnerTokenIssuer:  jsonCfg.App.OwnerTokenIssuer,
			Version:           jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				Dir: jsonCfg.Storage.Files.Dir,
			},
			S3: S3{
				Endpoint:        jsonCfg.Storage.S3.Endpoint,
				Region:          jsonCfg.Storage.S3.Region,
				Bucket:          jsonCfg.Storage.S3.Bucket,
				AccessKeyID:     jsonCfg.Storage.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Storage.S3.SecretAccessKey,
				UsePathStyle:    jsonCfg.Storage.S3.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
