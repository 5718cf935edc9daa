// Package errors is the error vocabulary shared by repositories,
// orchestrators and handlers.
//
// Errors carry a Code, a message safe to show a caller, an optional cause and
// optional metadata:
//
//	err := errors.NotFoundf("build %s not found", id).WithMeta("build_id", id)
//
// Wrap keeps the code of an inner *Error so a NotFound raised by a repository
// stays NotFound after the orchestrator adds context:
//
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to load build %s", id)
//	}
//
// Input checks go through the validation builder, which produces one
// InvalidArgument error listing every offending field:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Handlers convert with ToGRPCError; clients recover the code and metadata
// with FromGRPCError.
package errors
