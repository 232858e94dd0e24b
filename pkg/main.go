package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/canarylab/chirper/pkg/internal/auth"
	localCache "github.com/canarylab/chirper/pkg/internal/cache"
	"github.com/canarylab/chirper/pkg/internal/database"
	"github.com/canarylab/chirper/pkg/internal/http"
	"github.com/canarylab/chirper/pkg/internal/http/pages"
	"github.com/canarylab/chirper/pkg/internal/services"
	"github.com/canarylab/chirper/pkg/internal/storage"
	"github.com/canarylab/chirper/pkg/internal/stores"

	pkg "github.com/canarylab/chirper/pkg/internal"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Chirper"), pkg.AppVersion)
	fmt.Printf("The little server-rendered microblog\n")
	color.HiBlack("=====================================================")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Warm up the identity cache backend
	if err := localCache.Setup(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Connect to object storage
	uploads, err := storage.NewMinio()
	if err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connecting to object storage.")
	}

	profiles := stores.NewProfileStore(database.C)
	posts := stores.NewPostStore(database.C)

	deps := &pages.Pages{
		Auth:     auth.NewResolver(viper.GetString("security.token_secret"), profiles),
		Accounts: services.NewAccountService(profiles),
		Posts:    services.NewPostService(posts),
		Graph:    services.NewGraphService(profiles),
		Timeline: services.NewTimelineService(profiles, posts),
		Uploads:  uploads,
	}

	// Server
	go func() {
		srv := http.NewServer(deps, "./templates", "./static")
		if err := srv.Listen(viper.GetString("bind")); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when starting http server.")
		}
	}()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
