// Package errs provides the typed error taxonomy of the café service.
//
// Every error type follows the same pattern: a sentinel variable, a struct
// carrying the details, constructors with and without a cause, Error() and an
// Unwrap() that returns the sentinel so callers classify with errors.Is:
//   - ObjectNotFoundError: an order, item, menu entry or user does not exist
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: bad input
//   - ConflictError: the target's current state forbids the change
//   - AccessDeniedError: the actor's role lacks the capability
//   - StoreUnavailableError: the data store failed or timed out
//   - PartialFailureError: a multi-row write stopped part way
package errs
