package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/automatcher/internal/logger"
	"github.com/spigell/automatcher/internal/matcher"
	"github.com/spigell/automatcher/internal/secrets"
	"github.com/spigell/automatcher/internal/tinder"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the matching loop until interrupted",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	logger.Info("starting the automatcher", zap.String("version", version))

	token, err := resolveToken(config)
	if err != nil {
		logger.Fatal(
			"loading tinder token",
			zap.Error(err),
			zap.String("hint", "set TINDER_TOKEN_FILE or TINDER_TOKEN environment variable or the 'token-file' key in the configuration file"),
		)
	}

	location, err := resolveLocation(config.Location)
	if err != nil {
		logger.Fatal(
			"loading location",
			zap.Error(err),
			zap.String("hint", `set TINDER_LOCATION='{"lat": 55.75, "lon": 37.61}' or the 'location' key in the configuration file`),
		)
	}

	client := tinder.New(logger, token)
	if config.APIURL != "" {
		client.APIURL = strings.TrimRight(config.APIURL, "/")
	}
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	scheduler := matcher.NewScheduler(client, schedulerConfig(config, location), logger)

	err = scheduler.Run(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Info("stopping", zap.String("reason", "cancellation requested"))
		return
	}

	logger.Fatal("an unrecoverable error occurred", zap.Error(err))
}

func schedulerConfig(config *Config, location tinder.Geolocation) matcher.Config {
	cfg := matcher.Config{Location: location}

	if config.Likes != nil {
		cfg.InitialLikes = config.Likes.Initial
		cfg.Rearm = config.Likes.Rearm
	}

	if config.Schedule != nil {
		cfg.Backoff = config.Schedule.Backoff
		cfg.Cooldown = config.Schedule.Cooldown
	}

	return cfg
}

func resolveToken(config *Config) (uuid.UUID, error) {
	if config == nil {
		return uuid.Nil, errors.New("config is required")
	}

	return secrets.LoadToken(secrets.Source{
		Name:  "tinder token",
		Value: config.Token,
		File:  config.TokenFile,
	})
}

// resolveLocation accepts the location either as a map from the config file
// or as a JSON/YAML string coming from the environment.
func resolveLocation(raw any) (tinder.Geolocation, error) {
	switch value := raw.(type) {
	case nil:
		return tinder.Geolocation{}, errors.New("location is not configured")
	case string:
		return tinder.ParseGeolocation(value)
	case map[string]any:
		for _, key := range []string{"lat", "lon"} {
			if _, ok := value[key]; !ok {
				return tinder.Geolocation{}, fmt.Errorf("location: %s is missing", key)
			}
		}

		var loc tinder.Geolocation
		cfg := &mapstructure.DecoderConfig{
			Result:           &loc,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		}
		decoder, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return loc, err
		}
		if err := decoder.Decode(value); err != nil {
			return loc, fmt.Errorf("decode location: %w", err)
		}

		return loc, loc.Validate()
	default:
		return tinder.Geolocation{}, fmt.Errorf("unsupported location type %T", raw)
	}
}
