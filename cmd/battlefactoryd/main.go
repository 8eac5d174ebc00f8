package main

import (
	"os"
	"time"

	"github.com/bstrimzi/battlefactory/internal/api"
	"github.com/bstrimzi/battlefactory/internal/config"
	"github.com/bstrimzi/battlefactory/internal/constants"
	"github.com/bstrimzi/battlefactory/internal/engine"
	"github.com/bstrimzi/battlefactory/internal/logging"
	"github.com/bstrimzi/battlefactory/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	checkEnvVars([]string{constants.EnvSessionSecret, constants.EnvGoogleClientID, constants.EnvGoogleClientSecret})

	configPath := os.Getenv("BATTLEFACTORY_CONFIG")
	if configPath == "" {
		configPath = "./battlefactory_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid battlefactory configuration", err, logging.Fields{"config_path": configPath})
	}

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewCachedRepository(storage.NewSQLiteRepository(db))
	battleHandler := api.NewBattleHandler(repo, cfg.ActionTimeout)
	authHandler := api.NewAuthHandler(repo)

	// Background scanner: force-finish any battle session whose action
	// deadline passed with no submitted turn, matching the teacher's
	// timed-out-game sweep.
	go func() {
		ticker := time.NewTicker(1 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			sessions, err := repo.FindTimedOutSessions(now)
			if err != nil {
				logging.Error("timeout scanner failed", err, nil)
				continue
			}
			for _, s := range sessions {
				s.Outcome = uint8(engine.Draw)
				if err := repo.UpdateBattleSession(&s); err != nil {
					logging.Error("failed to expire battle session", err, logging.Fields{constants.LogFieldBattleID: s.ID})
				}
			}
		}
	}()

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteSpecies, battleHandler.ListSpecies)
		apiRoutes.GET(constants.RouteMoves, battleHandler.ListMoves)
		apiRoutes.GET(constants.RouteRentals, battleHandler.ListRentalArchetypes)
		apiRoutes.GET("/version", api.Version)

		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())
		protected.POST(constants.RouteBattles, battleHandler.CreateBattle)
		protected.GET(constants.RouteBattleByID, battleHandler.GetBattle)
		protected.POST(constants.RouteBattleTurn, battleHandler.ExecuteTurn)
	}

	router.POST(constants.RouteAuthGoogleCallBack, authHandler.GoogleOAuthCallback)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
