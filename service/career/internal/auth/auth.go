package auth

import (
	"context"
	"errors"
	"strings"

	"UltimateCareer/pkg/grpcx"
	"UltimateCareer/service/career/internal/apperr"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Gate di autenticazione: verifica il bearer token e mette l'identita'
// nel context. L'emissione dei token e' responsabilita' di un altro servizio.

var (
	ErrTokenMissing = apperr.Unauthorized("Token not provided")
	ErrTokenInvalid = apperr.Unauthorized("Invalid or expired token")
)

// Identity e' l'utente autenticato; il core usa solo ID come requesterId.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// Claims sono i claim attesi nel token.
type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier valida token HS256 firmati con il segreto condiviso.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify ritorna l'identita' contenuta in un token valido.
func (v *Verifier) Verify(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, ErrTokenMissing
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Identity{}, ErrTokenInvalid
	}
	return Identity{ID: id, Email: claims.Email, Role: claims.Role}, nil
}

// UnaryServerInterceptor autentica ogni chiamata tranne quelle in skip
// (es. health check).
func (v *Verifier) UnaryServerInterceptor(skip ...string) grpc.UnaryServerInterceptor {
	skipped := make(map[string]bool, len(skip))
	for _, method := range skip {
		skipped[method] = true
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if skipped[info.FullMethod] {
			return handler(ctx, req)
		}
		identity, err := v.Verify(bearerFromContext(ctx))
		if err != nil {
			return nil, apperr.ToStatus(err)
		}
		return handler(WithIdentity(ctx, identity), req)
	}
}

// bearerFromContext legge "authorization: Bearer <token>" dalle metadata gRPC.
func bearerFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(grpcx.AuthorizationMetadataKey)
	if len(values) == 0 {
		return ""
	}
	header := strings.TrimSpace(values[0])
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// WithIdentity salva l'identita' verificata nel context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, grpcx.ContextIdentityKey, identity)
}

// RequesterID prova prima l'identita' verificata, poi il context locale
// (user_id come stringa, usato da test e tool interni).
func RequesterID(ctx context.Context) (uuid.UUID, error) {
	if identity, ok := ctx.Value(grpcx.ContextIdentityKey).(Identity); ok && identity.ID != uuid.Nil {
		return identity.ID, nil
	}

	value, ok := ctx.Value(grpcx.ContextUserIDKey).(string)
	if !ok || strings.TrimSpace(value) == "" {
		return uuid.Nil, ErrTokenMissing
	}
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return parsed, nil
}

// RoleAdmin e' il ruolo richiesto dalle operazioni di amministrazione.
const RoleAdmin = "admin"

// ErrAdminRequired e' ritornato quando un utente non admin chiama un'operazione riservata.
var ErrAdminRequired = apperr.Forbidden("Admin access required")

// RequireAdmin verifica che l'identita' nel context abbia ruolo admin.
func RequireAdmin(ctx context.Context) error {
	identity, ok := ctx.Value(grpcx.ContextIdentityKey).(Identity)
	if !ok || identity.ID == uuid.Nil {
		return ErrTokenMissing
	}
	if identity.Role != RoleAdmin {
		return ErrAdminRequired
	}
	return nil
}

// IsAuthError indica un errore del gate (401).
func IsAuthError(err error) bool {
	return errors.Is(err, apperr.ErrUnauthorized)
}
