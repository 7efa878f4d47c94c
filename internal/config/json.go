package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Client struct {
		Server         string   `json:"server"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
		CACert         string   `json:"ca_cert"`
		Debug          bool     `json:"debug"`
	} `json:"client,omitempty"`

	Output struct {
		Format string `json:"format"`
	} `json:"output,omitempty"`

	Storage struct {
		HistoryDSN string `json:"history_dsn"`
	} `json:"storage,omitempty"`

	Sandbox struct {
		Address         string   `json:"address"`
		Fixtures        string   `json:"fixtures"`
		SignKey         string   `json:"sign_key"`
		TLSCert         string   `json:"tls_cert"`
		TLSKey          string   `json:"tls_key"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"sandbox,omitempty"`
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
		Client: Client{
			Server:         jsonCfg.Client.Server,
			Token:          jsonCfg.Client.Token,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			CACertFile:     jsonCfg.Client.CACert,
			Debug:          jsonCfg.Client.Debug,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
		},
		Storage: Storage{
			HistoryDSN: jsonCfg.Storage.HistoryDSN,
		},
		Sandbox: Sandbox{
			Address:         jsonCfg.Sandbox.Address,
			FixturesPath:    jsonCfg.Sandbox.Fixtures,
			SignKey:         jsonCfg.Sandbox.SignKey,
			TLSCertFile:     jsonCfg.Sandbox.TLSCert,
			TLSKeyFile:      jsonCfg.Sandbox.TLSKey,
			ShutdownTimeout: time.Duration(jsonCfg.Sandbox.ShutdownTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
