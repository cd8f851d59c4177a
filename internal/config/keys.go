package config

import (
	"fmt"
	"os"
	"strconv"
)

type keyType int

const (
	kString keyType = iota
	kInt
)

type keySpec struct {
	key     string
	typ     keyType
	env     string
	secret  bool
	apply   func(cfg *Config, v any)
	extract func(cfg Config) any
}

var specs = []keySpec{
	{
		key: "speech.base_url", typ: kString, env: "VOXFORM_SPEECH_BASE_URL",
		apply:   func(cfg *Config, v any) { cfg.Speech.BaseURL = v.(string) },
		extract: func(cfg Config) any { return cfg.Speech.BaseURL },
	},
	{
		key: "speech.language", typ: kString, env: "VOXFORM_SPEECH_LANGUAGE",
		apply:   func(cfg *Config, v any) { cfg.Speech.Language = v.(string) },
		extract: func(cfg Config) any { return cfg.Speech.Language },
	},
	{
		key: "speech.api_key", typ: kString, env: "VOXFORM_SPEECH_API_KEY",
		secret:  true,
		apply:   func(cfg *Config, v any) { cfg.Speech.APIKey = v.(string) },
		extract: func(cfg Config) any { return cfg.Speech.APIKey },
	},
	{
		key: "capture.recorder", typ: kString, env: "VOXFORM_CAPTURE_RECORDER",
		apply:   func(cfg *Config, v any) { cfg.Capture.Recorder = v.(string) },
		extract: func(cfg Config) any { return cfg.Capture.Recorder },
	},
	{
		key: "capture.device", typ: kString, env: "VOXFORM_CAPTURE_DEVICE",
		apply:   func(cfg *Config, v any) { cfg.Capture.Device = v.(string) },
		extract: func(cfg Config) any { return cfg.Capture.Device },
	},
	{
		key: "capture.listen_timeout", typ: kString, env: "VOXFORM_CAPTURE_LISTEN_TIMEOUT",
		apply:   func(cfg *Config, v any) { cfg.Capture.ListenTimeout = v.(string) },
		extract: func(cfg Config) any { return cfg.Capture.ListenTimeout },
	},
	{
		key: "capture.phrase_limit", typ: kString, env: "VOXFORM_CAPTURE_PHRASE_LIMIT",
		apply:   func(cfg *Config, v any) { cfg.Capture.PhraseLimit = v.(string) },
		extract: func(cfg Config) any { return cfg.Capture.PhraseLimit },
	},
	{
		key: "input.max_voice_retries", typ: kInt, env: "VOXFORM_INPUT_MAX_VOICE_RETRIES",
		apply:   func(cfg *Config, v any) { cfg.Input.MaxVoiceRetries = v.(int) },
		extract: func(cfg Config) any { return cfg.Input.MaxVoiceRetries },
	},
	{
		key: "store.dir", typ: kString, env: "VOXFORM_STORE_DIR",
		apply:   func(cfg *Config, v any) { cfg.Store.Dir = v.(string) },
		extract: func(cfg Config) any { return cfg.Store.Dir },
	},
	{
		key: "store.filename", typ: kString, env: "VOXFORM_STORE_FILENAME",
		apply:   func(cfg *Config, v any) { cfg.Store.Filename = v.(string) },
		extract: func(cfg Config) any { return cfg.Store.Filename },
	},
	{
		key: "log.level", typ: kString, env: "VOXFORM_LOG_LEVEL",
		apply:   func(cfg *Config, v any) { cfg.Log.Level = v.(string) },
		extract: func(cfg Config) any { return cfg.Log.Level },
	},
}

func applyBackend(cfg *Config, b ConfigBackend) error {
	for _, s := range specs {
		if s.secret {
			continue
		}
		switch s.typ {
		case kString:
			v, ok, err := b.GetString(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		case kInt:
			v, ok, err := b.GetInt(s.key)
			if err != nil {
				return fmt.Errorf("reading %s: %w", s.key, err)
			}
			if ok {
				s.apply(cfg, v)
			}
		}
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	for _, s := range specs {
		if s.env == "" {
			continue
		}
		raw := os.Getenv(s.env)
		if raw == "" {
			continue
		}
		switch s.typ {
		case kString:
			s.apply(cfg, raw)
		case kInt:
			if i, err := strconv.Atoi(raw); err == nil {
				s.apply(cfg, i)
			} else {
				fmt.Fprintf(os.Stderr, "[WARN] could not parse integer from env var %s=%q: %v. Using default value.\n", s.env, raw, err)
			}
		}
	}
}
