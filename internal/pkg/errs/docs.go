// Package errs provides the standardized error types used across the
// FaithCafe backend.
//
// Errors fall into the taxonomy the application surfaces to callers:
//   - ObjectNotFoundError: an order, menu item, user or rider is absent
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value violates a business rule
//   - ValueIsOutOfRangeError: a value lies outside its permitted interval
//
// Each type follows the same pattern: a sentinel error variable, a struct
// carrying details, constructors with and without a cause, an Error method
// for formatting and an Unwrap method so errors.Is can classify by sentinel.
//
// Storage-level failures are deliberately not represented here: per the
// error-handling design, fixture and store read failures are logged and
// degrade to empty collections instead of propagating.
package errs
