package constants

// Centralized constants for env keys, headers, routes, JSON field names and
// user-facing error strings shared across the HTTP shell.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGoogleClientID      = "GOOGLE_CLIENT_ID"
	EnvGoogleClientSecret  = "GOOGLE_CLIENT_SECRET"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	ContentTypeJSON     = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// Session / Cookie names
	CookieSessionName = "bf_session"

	// Google OAuth constants
	GoogleOAuthRedirect = "postmessage"
	GoogleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

var (
	// Scopes for Google userinfo
	GoogleUserInfoScopes = []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"}
)

// Routes used by the HTTP router.
const (
	RouteAPIPrefix          = "/api"
	RouteAuthGoogleCallBack = "/auth/google/oauth2callback"
	RouteSpecies            = "/species"
	RouteMoves              = "/moves"
	RouteRentals            = "/rentals"
	RouteBattles            = "/battles"
	RouteBattleByID         = "/battles/:battleID"
	RouteBattleTurn         = "/battles/:battleID/turn"
)

// Common JSON response keys.
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyDetails = "details"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers.
const (
	ErrInvalidRequest      = "Invalid request"
	ErrMissingGoogleEnv    = "Missing GOOGLE_CLIENT_ID/GOOGLE_CLIENT_SECRET in environment"
	ErrInvalidBattleID     = "Invalid battle ID"
	ErrBattleNotFound      = "Battle not found"
	ErrFailedFetchSpecies  = "Failed to fetch species"
	ErrFailedFetchMoves    = "Failed to fetch moves"
	ErrFailedFetchRentals  = "Failed to fetch rental archetypes"
	ErrFailedCreateBattle  = "Failed to create battle"
	ErrFailedFetchBattle   = "Failed to fetch battle"
	ErrFailedExecuteTurn   = "Failed to execute turn"
	ErrBattleAlreadyOver   = "Battle has already finished"
	ErrInvalidAction       = "Invalid action"
	ErrEmailRequired       = "email is required"

	ErrFailedExchangeToken    = "Failed to exchange token"
	ErrFailedGetUserInfo      = "Failed to get user info"
	ErrFailedReadUserData     = "Failed to read user data: %s"
	ErrNoEmailInGoogleProfile = "No email in Google profile"
	ErrFailedCreateSession    = "Failed to create session"

	ErrAuthRequired   = "Authentication required"
	ErrInvalidSession = "Invalid session"
)

// Logging field names.
const (
	LogFieldBattleID = "battle_id"
	LogFieldSlot     = "slot"
	LogFieldEffect   = "effect"
	LogFieldItem     = "item"
	LogFieldSource   = "source"
	LogFieldAddr     = "addr"
	LogFieldKey      = "key"
)
