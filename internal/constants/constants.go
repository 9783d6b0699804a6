package constants

// ContextKeyUserID is the Gin context key under which the authenticated
// user's ID is stored by the auth middleware.
const ContextKeyUserID = "user_id"

// MinUsernameLength is the minimum number of characters in a username.
const MinUsernameLength = 3

// MinPasswordLength is the minimum number of characters in a password.
const MinPasswordLength = 4

// TokenIssuer is the issuer claim embedded in signed tokens.
const TokenIssuer = "imf-gadget-api"
