package config

type Config struct {
	Speech  SpeechConfig
	Capture CaptureConfig
	Input   InputConfig
	Store   StoreConfig
	Log     LogConfig
}

type SpeechConfig struct {
	BaseURL  string
	Language string
	APIKey   string
}

type CaptureConfig struct {
	Recorder string
	Device   string
	// Durations are stored as strings ("10s") and parsed at wiring time
	// so a bad value degrades to the default with a warning.
	ListenTimeout string
	PhraseLimit   string
}

type InputConfig struct {
	MaxVoiceRetries int
}

type StoreConfig struct {
	Dir      string
	Filename string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Speech: SpeechConfig{
			BaseURL:  "http://localhost:2700",
			Language: "en-US",
		},
		Capture: CaptureConfig{
			Recorder:      "rec",
			ListenTimeout: "10s",
			PhraseLimit:   "5s",
		},
		Input: InputConfig{
			MaxVoiceRetries: 3,
		},
		Store: StoreConfig{
			Dir:      "profiles",
			Filename: "user_profile.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from the JSON file backend at
// $XDG_CONFIG_HOME/voxform/config.json, then applies VOXFORM_* environment
// overrides. Everything has a default; nothing is required, so a bare run
// behaves like the stock questionnaire.
func Load() (Config, error) {
	return loadWith(newFileBackend())
}

func loadWith(b ConfigBackend) (Config, error) {
	cfg := defaults()
	if err := applyBackend(&cfg, b); err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}
