package agent

import (
	"os"
	"strconv"
	"time"
)

// Default model settings, overridable through the environment.
const (
	defaultMaxTokens         = 16384
	defaultTemperature       = 0.7
	defaultParallelToolCalls = true
	defaultTimeoutSeconds    = 32400.0
)

// Settings carries the model and execution parameters shared by the
// supervisor and its sub-agents.
type Settings struct {
	// MaxTokens caps completion length per model call.
	MaxTokens int

	// Temperature controls sampling randomness.
	Temperature float64

	// ParallelToolCalls runs the tool calls of one model turn concurrently.
	ParallelToolCalls bool

	// Timeout bounds a whole supervisor run. Zero means no bound.
	Timeout time.Duration

	// ToolTimeout bounds each individual tool call. Zero means no bound.
	ToolTimeout time.Duration
}

// SettingsFromEnv builds Settings from the MAX_TOKENS, TEMPERATURE,
// PARALLEL_TOOL_CALLS, TIMEOUT, and TOOL_TIMEOUT environment variables.
// Timeouts are given in seconds. Unset or unparsable variables keep their
// defaults.
func SettingsFromEnv() Settings {
	return Settings{
		MaxTokens:         envInt("MAX_TOKENS", defaultMaxTokens),
		Temperature:       envFloat("TEMPERATURE", defaultTemperature),
		ParallelToolCalls: envBool("PARALLEL_TOOL_CALLS", defaultParallelToolCalls),
		Timeout:           envSeconds("TIMEOUT", defaultTimeoutSeconds),
		ToolTimeout:       envSeconds("TOOL_TIMEOUT", defaultTimeoutSeconds),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envSeconds(key string, fallback float64) time.Duration {
	return time.Duration(envFloat(key, fallback) * float64(time.Second))
}
