package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail; values structpb cannot represent are dropped.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if details, derr := structpb.NewStruct(normalizeMeta(customErr.Meta)); derr == nil {
			if withDetails, werr := st.WithDetails(details); werr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error back to an *Error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// normalizeMeta rewrites the shapes the validation builder produces
// (map[string][]string) into ones structpb accepts.
func normalizeMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		switch typed := v.(type) {
		case map[string][]string:
			fields := make(map[string]any, len(typed))
			for field, msgs := range typed {
				list := make([]any, len(msgs))
				for i, m := range msgs {
					list[i] = m
				}
				fields[field] = list
			}
			out[k] = fields
		case []string:
			list := make([]any, len(typed))
			for i, s := range typed {
				list[i] = s
			}
			out[k] = list
		case int:
			out[k] = float64(typed)
		default:
			out[k] = v
		}
	}
	return out
}
