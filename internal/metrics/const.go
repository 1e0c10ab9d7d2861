package metrics

const Namespace = "elite_dashboard"

// Login outcomes.
const (
	LoginOutcomeStarted   = "started"
	LoginOutcomeSuccess   = "success"
	LoginOutcomeDenied    = "denied"
	LoginOutcomeCancelled = "cancelled"
	LoginOutcomeFailed    = "failed"
)

// Session store operations.
const (
	SessionOperationInit         = "init"
	SessionOperationValidateInit = "validate_init"
	SessionOperationSave         = "save"
	SessionOperationGet          = "get"
	SessionOperationRefresh      = "refresh_ttl"
	SessionOperationInvalidate   = "invalidate"
)

// Discord API endpoints.
const (
	ProviderEndpointToken  = "token"
	ProviderEndpointSelf   = "users_me"
	ProviderEndpointMember = "guild_member"
)

// Issued token kinds.
const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)
