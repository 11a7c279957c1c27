// Package errs provides the error taxonomy shared by the fulfillment service.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrForbidden, ...) for errors.Is checks
//   - a struct carrying the details (param name, IDs, transition endpoints)
//   - constructors, with and without a cause where a cause makes sense
//   - Unwrap returning the sentinel
//
// The HTTP adapter classifies errors only through the sentinels, so domain
// code is free to wrap them with fmt.Errorf("...: %w", err).
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: missing entity, or one the actor may not see
//   - UnauthenticatedError, ForbiddenError: access gate outcomes
//   - InvalidTransitionError: order status transition not allowed
//   - InsufficientStockError: inventory reservation failed
//   - ConflictError: uniqueness violation
//   - VersionIsInvalidError: optimistic concurrency mismatch
package errs
