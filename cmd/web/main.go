package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/learn-atlas/pkg/server"
	"github.com/de-tools/learn-atlas/pkg/services/config"
	"github.com/de-tools/learn-atlas/pkg/services/report"
	"github.com/de-tools/learn-atlas/pkg/services/templates"
	"github.com/de-tools/learn-atlas/pkg/store/duckdb"
	"github.com/de-tools/learn-atlas/pkg/store/records"
)

var (
	cfgPath     string
	catalogPath string
	profileName string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Learn Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultPath := fmt.Sprintf("%s/.learnatlas", usr.HomeDir)

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", defaultPath,
		"Path to the profiles file (default is $HOME/.learnatlas)")
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "",
		"Optional YAML catalog with extra report templates")
	rootCmd.Flags().StringVar(&profileName, "profile", "default",
		"Profile name inside the profiles file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	profiles, err := config.NewRegistry(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to create profile registry: %w", err)
	}

	profile, err := profiles.GetProfile(ctx, profileName)
	if err != nil {
		return fmt.Errorf("failed to resolve profile %q: %w", profileName, err)
	}

	catalog := templates.Builtin()
	if catalogPath != "" {
		extra, err := templates.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("failed to load template catalog: %w", err)
		}
		catalog = append(catalog, extra...)
	}

	registry, err := templates.NewRegistry(catalog...)
	if err != nil {
		return fmt.Errorf("failed to build template registry: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: profile.DbPath})
	if err != nil {
		return fmt.Errorf("failed to open records database: %w", err)
	}

	recordStore, err := records.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create records store: %w", err)
	}

	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", cfgPath)
	logger.Info().Msgf("Serving reports from `%s` with %d registered templates.",
		profile.DbPath, len(catalog))

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	webAPI := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Registry:  registry,
			Generator: report.NewGenerator(registry, recordStore),
			Logger:    logger,
		},
	})

	return webAPI.Start()
}
