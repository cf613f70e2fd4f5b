package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

// Config holds every setting of the venue process. It is built once at
// startup and passed down; nothing mutates it afterwards.
type Config struct {
	Paths     PathsConfig     `yaml:"paths"`
	Game      GameConfig      `yaml:"game"`
	Camera    CameraConfig    `yaml:"camera"`
	Audio     AudioConfig     `yaml:"audio"`
	Extractor ExtractorConfig `yaml:"extractor"`
	Redis     RedisConfig     `yaml:"redis"`
	Discord   DiscordConfig   `yaml:"discord"`
	HTTP      HTTPConfig      `yaml:"http"`
	Log       LogConfig       `yaml:"log"`
}

// PathsConfig holds filesystem locations.
type PathsConfig struct {
	Videos        string `yaml:"videos"`
	CamShots      string `yaml:"cam_shots"`
	Results       string `yaml:"results"`
	TemplateImage string `yaml:"template_image"`
	MaskImage     string `yaml:"mask_image"`
	NoHitImage    string `yaml:"no_hit_image"`
}

// GameConfig holds session rules.
type GameConfig struct {
	MaxPlayers      int               `yaml:"max_players"`
	ArrowsPerPlayer int               `yaml:"arrows_per_player"`
	TickInterval    time.Duration     `yaml:"tick_interval"`
	SessionPrefix   string            `yaml:"session_prefix"`
	Points          models.PointScale `yaml:"points"`
	Shooters        []string          `yaml:"shooters"`
}

// CameraConfig holds camera feed settings.
type CameraConfig struct {
	DeviceIndex int           `yaml:"device_index"`
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Format      string        `yaml:"format"`
	SettleDelay time.Duration `yaml:"settle_delay"`
	GrabTimeout time.Duration `yaml:"grab_timeout"`
}

// AudioConfig holds bang detector settings.
type AudioConfig struct {
	Enabled          bool          `yaml:"enabled"`
	DeviceIndex      int           `yaml:"device_index"`
	BlockTime        time.Duration `yaml:"block_time"`
	InitialThreshold float64       `yaml:"initial_threshold"`
	Oversensitive    time.Duration `yaml:"oversensitive"`
	Undersensitive   time.Duration `yaml:"undersensitive"`
	MaxTapLength     time.Duration `yaml:"max_tap_length"`
}

// ExtractorConfig holds target extraction settings.
type ExtractorConfig struct {
	// MatchMethod is one of sqdiff, sqdiff_normed, ccorr, ccorr_normed, ccoeff, ccoeff_normed
	MatchMethod string `yaml:"match_method"`
}

// RedisConfig holds session persistence settings. An empty Addr disables persistence.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// DiscordConfig holds report publishing settings. An empty Token disables publishing.
type DiscordConfig struct {
	Token     string `yaml:"token"`
	ChannelID string `yaml:"channel_id"`
}

// HTTPConfig holds the control API listener. An empty Addr disables it.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the venue defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Videos:        "./videos",
			CamShots:      "./cam_shots",
			Results:       "./results",
			TemplateImage: "./pattern_img/target_template.png",
			MaskImage:     "./pattern_img/target_mask.png",
			NoHitImage:    "./pattern_img/no_hit_image.png",
		},
		Game: GameConfig{
			MaxPlayers:      12,
			ArrowsPerPlayer: 3,
			TickInterval:    50 * time.Millisecond,
			SessionPrefix:   "BogenKino",
			Points:          models.DefaultPointScale(),
		},
		Camera: CameraConfig{
			DeviceIndex: 0,
			Width:       1920,
			Height:      1080,
			Format:      "png",
			SettleDelay: time.Second,
			GrabTimeout: 5 * time.Second,
		},
		Audio: AudioConfig{
			Enabled:          true,
			DeviceIndex:      1,
			BlockTime:        35 * time.Millisecond,
			InitialThreshold: 0.025,
			Oversensitive:    15 * time.Second,
			Undersensitive:   120 * time.Second,
			MaxTapLength:     150 * time.Millisecond,
		},
		Extractor: ExtractorConfig{
			MatchMethod: "ccorr_normed",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the YAML file (if present),
// a .env file (if present) and environment overrides, in that order.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal %s: %v", ErrInvalidConfig, filename, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults plus environment only
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// A missing .env is normal outside development
	_ = godotenv.Load()

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CINEMA_VIDEOS_PATH"); v != "" {
		cfg.Paths.Videos = v
	}
	if v := os.Getenv("CINEMA_CAM_SHOTS_PATH"); v != "" {
		cfg.Paths.CamShots = v
	}
	if v := os.Getenv("CINEMA_RESULTS_PATH"); v != "" {
		cfg.Paths.Results = v
	}
	if v := os.Getenv("CINEMA_ARROWS_PER_PLAYER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Game.ArrowsPerPlayer = n
		}
	}
	if v := os.Getenv("CINEMA_CAMERA_INDEX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Camera.DeviceIndex = n
		}
	}
	if v := os.Getenv("CINEMA_MICRO_INDEX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Audio.DeviceIndex = n
		}
	}
	if v := os.Getenv("CINEMA_AUDIO_ENABLED"); v != "" {
		cfg.Audio.Enabled = v == "true"
	}
	if v := os.Getenv("CINEMA_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("CINEMA_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		cfg.Discord.Token = v
	}
	if v := os.Getenv("DISCORD_CHANNEL_ID"); v != "" {
		cfg.Discord.ChannelID = v
	}
}

// Validate checks the settings the core cannot run without.
func (c *Config) Validate() error {
	if c.Game.ArrowsPerPlayer < 1 {
		return fmt.Errorf("%w: arrows_per_player must be at least 1", ErrInvalidConfig)
	}
	if c.Game.MaxPlayers < 1 {
		return fmt.Errorf("%w: max_players must be at least 1", ErrInvalidConfig)
	}
	if c.Game.TickInterval <= 0 || c.Game.TickInterval > time.Second {
		return fmt.Errorf("%w: tick_interval must be within (0, 1s]", ErrInvalidConfig)
	}
	if c.Audio.BlockTime <= 0 {
		return fmt.Errorf("%w: audio block_time must be positive", ErrInvalidConfig)
	}
	if c.Audio.InitialThreshold <= 0 {
		return fmt.Errorf("%w: audio initial_threshold must be positive", ErrInvalidConfig)
	}
	if c.Camera.Format == "" {
		return fmt.Errorf("%w: camera format is required", ErrInvalidConfig)
	}
	if c.Discord.Token != "" && c.Discord.ChannelID == "" {
		return fmt.Errorf("%w: discord channel_id is required when a token is set", ErrInvalidConfig)
	}
	if len(c.Game.Shooters) > c.Game.MaxPlayers {
		return fmt.Errorf("%w: %d shooters configured, max_players is %d", ErrInvalidConfig, len(c.Game.Shooters), c.Game.MaxPlayers)
	}
	return nil
}

// SlogLevel maps the configured level name onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
