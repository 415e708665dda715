package apperr

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Domain identifica gli errori del career-svc in ErrorInfo.
const Domain = "career-svc"

// GRPCCode mappa il kind nel codice gRPC equivalente.
func (k Kind) GRPCCode() codes.Code {
	switch k {
	case KindUnauthorized:
		return codes.Unauthenticated
	case KindForbidden:
		return codes.PermissionDenied
	case KindNotFound:
		return codes.NotFound
	case KindConflict:
		return codes.AlreadyExists
	case KindValidation:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// ToStatus converte un errore in status gRPC con ErrorInfo e, per la
// validazione, BadRequest con tutte le field violation.
// Gli errori non di dominio diventano Internal con messaggio generico.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		appErr = &Error{Kind: KindInternal, Message: "Internal server error"}
	}

	st := status.New(appErr.Kind.GRPCCode(), appErr.Message)
	details := []protoadapt.MessageV1{&errdetails.ErrorInfo{Reason: string(appErr.Kind), Domain: Domain}}
	if len(appErr.Fields) > 0 {
		violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(appErr.Fields))
		for _, f := range appErr.Fields {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       f.Field,
				Description: f.Message,
			})
		}
		details = append(details, &errdetails.BadRequest{FieldViolations: violations})
	}

	withDetails, detailErr := st.WithDetails(details...)
	if detailErr != nil {
		return st.Err()
	}
	return withDetails.Err()
}
