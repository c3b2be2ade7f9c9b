package main

import (
	"os"

	"github.com/ericogr/game-balance/internal/api"
	"github.com/ericogr/game-balance/internal/constants"
	"github.com/ericogr/game-balance/internal/logging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Configuration file path may be provided via BALANCE_CONFIG or defaults
	// to ./balance_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	// Allow the DB path to be configured via BALANCE_DB. Default to a
	// `data/` directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)

	handler := api.NewProjectHandler(repo, cfg.DefaultAttributes, cfg.DefaultStatDefinitions)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)

		apiRoutes.POST(constants.RouteProjects, handler.CreateProject)
		apiRoutes.GET(constants.RouteProjects, handler.ListProjects)
		apiRoutes.GET(constants.RouteProject, handler.GetProject)
		apiRoutes.PUT(constants.RouteProjectAttributes, handler.UpdateAttributes)

		apiRoutes.POST(constants.RouteCharacters, handler.CreateCharacter)
		apiRoutes.DELETE(constants.RouteCharacter, handler.DeleteCharacter)
		apiRoutes.PUT(constants.RouteCharacterLevel, handler.SetCharacterLevel)
		apiRoutes.PUT(constants.RouteCharacterAttribute, handler.SetCharacterAttribute)

		apiRoutes.POST(constants.RouteEnemies, handler.CreateEnemy)
		apiRoutes.DELETE(constants.RouteEnemy, handler.DeleteEnemy)
		apiRoutes.PUT(constants.RouteEnemyLevel, handler.SetEnemyLevel)
		apiRoutes.PUT(constants.RouteEnemyAttribute, handler.SetEnemyAttribute)

		apiRoutes.POST(constants.RouteStatDefinitions, handler.CreateStatDefinition)
		apiRoutes.GET(constants.RouteStatDefinitions, handler.ListStatDefinitions)
		apiRoutes.PUT(constants.RouteStatDefinition, handler.UpdateStatDefinition)

		apiRoutes.GET(constants.RouteBalance, handler.GetBalanceComparison)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
