package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "BALANCE_CONFIG"
	EnvDBPath     = "BALANCE_DB"

	// Defaults for local development
	DefaultConfigPath = "./balance_config.json"
	DefaultDBPath     = "./data/balance.db"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteVersion  = "/version"
	RouteProjects = "/projects"
	RouteProject  = "/projects/:projectID"

	RouteProjectAttributes = "/projects/:projectID/attributes"

	RouteCharacters         = "/projects/:projectID/characters"
	RouteCharacter          = "/projects/:projectID/characters/:characterID"
	RouteCharacterLevel     = "/projects/:projectID/characters/:characterID/level"
	RouteCharacterAttribute = "/projects/:projectID/characters/:characterID/attributes/:attribute"

	RouteEnemies        = "/projects/:projectID/enemies"
	RouteEnemy          = "/projects/:projectID/enemies/:enemyID"
	RouteEnemyLevel     = "/projects/:projectID/enemies/:enemyID/level"
	RouteEnemyAttribute = "/projects/:projectID/enemies/:enemyID/attributes/:attribute"

	RouteStatDefinitions = "/projects/:projectID/stats"
	RouteStatDefinition  = "/projects/:projectID/stats/:statName"

	RouteBalance = "/projects/:projectID/balance/:characterID/:enemyID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"

	ErrProjectNotFound   = "Project not found"
	ErrCharacterNotFound = "Character not found"
	ErrEnemyNotFound     = "Enemy not found"
	ErrStatNotFound      = "Stat definition not found"

	ErrProjectNameRequired = "Project name is required"
	ErrProjectNameExceeds  = "Project name exceeds 64 characters"
	ErrDescriptionExceeds  = "Description exceeds 256 characters"
	ErrEntityNameRequired  = "Name is required"
	ErrStatNameRequired    = "Stat name is required"
	ErrAttributeRequired   = "Attribute name is required"
	ErrLevelTooLow         = "Level must be at least 1"
	ErrStatAlreadyExists   = "Stat definition already exists"

	ErrFailedCreateProject = "Failed to create project"
	ErrFailedFetchProjects = "Failed to fetch projects"
	ErrFailedFetchProject  = "Failed to fetch project"
	ErrFailedUpdateProject = "Failed to update project"
	ErrFailedDeleteEntity  = "Failed to delete entity"
	ErrFailedEncodeProject = "Failed to encode project"
	ErrProjectConflict     = "Project was modified concurrently"
)

// Logging field names
const (
	LogFieldProjectID   = "project_id"
	LogFieldCharacterID = "character_id"
	LogFieldEnemyID     = "enemy_id"
	LogFieldStatName    = "stat_name"
	LogFieldAttribute   = "attribute"
	LogFieldAddr        = "addr"
)
