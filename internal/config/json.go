package config

import (
	"encoding/json"
	"os"

	"societymarket/internal/flagx"
	"societymarket/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the latency either as a string like
// "500ms" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN      string         `json:"database_dsn"`
	SimulatedLatency timex.Duration `json:"simulated_latency"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c/-config flags; when neither is given, nothing happens.
// Only fields present in the file override the current values. Read or
// unmarshal errors panic (caller may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SimulatedLatency.Duration != 0 {
		cfg.SimulatedLatency = jc.SimulatedLatency.Duration
	}
}
