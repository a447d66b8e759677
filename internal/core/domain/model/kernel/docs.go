// Package kernel holds the value objects shared by every aggregate of the café
// domain:
//   - Money: an exact, non-negative decimal amount used for prices and totals
//   - Login: the validated identifier of a user
//
// Both are immutable and must be created through their constructors; a zero
// value fails Validate.
package kernel
