package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caexamhub/caprep/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// are given in whole seconds to keep hand-written files simple.
type JsonConfig struct {
	DatabasePath        string `json:"database_path"`
	QuizDurationSeconds int    `json:"quiz_duration_seconds"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. Missing flag means no JSON stage.
// Unset fields in the file keep their current values. Panics on read or
// unmarshal errors: a config file that exists but cannot be used is a
// startup defect, not a runtime condition.
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

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.QuizDurationSeconds > 0 {
		cfg.QuizDuration = time.Duration(jc.QuizDurationSeconds) * time.Second
	}
}
