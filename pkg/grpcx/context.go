package grpcx

// Chiavi condivise per passare l'identita' utente nel context gRPC.
type contextKey string

// ContextUserIDKey definisce la chiave per il context locale (non gRPC).
// Lo usano i test e i tool interni che chiamano i servizi senza token.
const ContextUserIDKey contextKey = "user_id"

// ContextIdentityKey contiene l'identita' verificata dal gate di autenticazione.
const ContextIdentityKey contextKey = "identity"

// AuthorizationMetadataKey e' la metadata gRPC con il bearer token.
const AuthorizationMetadataKey = "authorization"
