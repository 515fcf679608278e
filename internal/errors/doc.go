// Package errors provides the structured error type shared by the rules
// engine, the orchestrators and the gRPC handlers.
//
// Every error carries a Code, a user facing Message and optional metadata.
// The rules engine maps its failure classes onto codes:
//
//   - malformed dice formulas: InvalidArgument tagged with rule "dice_format"
//     (see Formatf and IsFormat)
//   - values outside their legal range (NEX, creation attributes): OutOfRange
//   - actions the rules forbid (circle gate, affinity gate, PE limits):
//     FailedPrecondition tagged with the violated rule (see RuleViolationf,
//     IsRuleViolation and GetRule)
//   - unknown conditions, rituals, classes or characters: NotFound
//
// # Basic Usage
//
//	err := errors.NotFound("ritual not found").WithMeta("ritual_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
//	return errors.RuleViolationf(errors.RulePETurnLimit,
//	    "spending %d PE exceeds the turn limit of %d", cost, limit)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("nex", nex, 0, 99, vb)
//	if err := vb.BuildWithCode(errors.CodeOutOfRange); err != nil {
//	    return err
//	}
//
// # gRPC Integration
//
// Handlers convert with ToGRPCError; clients convert back with FromGRPCError.
package errors
