// Package errors provides structured errors for the toolkit.
//
// Every error carries a Code that mirrors the gRPC status codes, and the
// errors a DM has to act on also carry a Kind:
//   - MALFORMED_GENERATION_RESULT: a completion could not be parsed; the raw
//     text is kept in the "raw" metadata entry
//   - NO_SOURCE_TEXT: a translation was requested for an empty source field
//   - BILLING_REQUIRED: image generation was refused; "manual_prompt" holds a
//     prompt to paste into another tool
//   - STORAGE_UNAVAILABLE: the storage backend failed
//   - PARTIAL_TRANSLATION_FAILURE: some fields translated, "failed_fields"
//     lists the rest
//   - GENERATION_IN_PROGRESS: a record already has a running generation
//
// # Basic Usage
//
//	err := errors.NotFoundf("world %s not found", id)
//	if errors.IsNoSourceText(err) {
//	    // ask the DM to fill the source field first
//	}
//
// Wrapping keeps code, kind and metadata:
//
//	if err := repo.Get(ctx, in); err != nil {
//	    return errors.Wrap(err, "failed to load campaign")
//	}
//
// # gRPC Integration
//
// ToGRPCError attaches an ErrorInfo detail whose reason is the kind, and
// FromGRPCError restores it on the client side.
package errors
