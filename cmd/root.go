package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "automatcher"
)

type Config struct {
	Token     string          `mapstructure:"token"`
	TokenFile string          `mapstructure:"token-file"`
	Location  any             `mapstructure:"location"`
	APIURL    string          `mapstructure:"api-url"`
	UserAgent string          `mapstructure:"user-agent"`
	Likes     *LikesConfig    `mapstructure:"likes"`
	Schedule  *ScheduleConfig `mapstructure:"schedule"`
}

type LikesConfig struct {
	Initial int  `mapstructure:"initial"`
	Rearm   bool `mapstructure:"rearm"`
}

type ScheduleConfig struct {
	Backoff  time.Duration `mapstructure:"backoff"`
	Cooldown time.Duration `mapstructure:"cooldown"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "automatcher likes back everyone who already liked you on Tinder and spends the rest of the likes on recommendations",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envs := map[string]string{
		"token":      "TINDER_TOKEN",
		"token-file": "TINDER_TOKEN_FILE",
		"location":   "TINDER_LOCATION",
	}
	for key, env := range envs {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is automatcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The whole config may come from the environment, so a missing default file is fine.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
