package client

import (
	"fmt"
	"slices"
	"strings"

	"google.golang.org/grpc/status"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
)

// DescribeError renders a command error for the terminal. Server errors are
// decoded back into their code and any per-field validation messages.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	if _, ok := status.FromError(err); !ok {
		return err.Error()
	}

	decoded := errors.FromGRPCError(err)
	var b strings.Builder
	switch {
	case errors.IsInternal(decoded):
		b.WriteString("server error: ")
	case errors.IsUnavailable(decoded):
		b.WriteString("service unavailable: ")
	default:
		fmt.Fprintf(&b, "%s: ", errors.GetCode(decoded))
	}
	b.WriteString(errors.GetMessage(decoded))

	fields, _ := errors.GetMeta(decoded)["validation_errors"].(map[string]any)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		msgs, _ := fields[name].([]any)
		for _, msg := range msgs {
			fmt.Fprintf(&b, "\n  %s: %v", name, msg)
		}
	}
	return b.String()
}
