// Package services provides domain services of the café that span more than
// one model: the AccessGate combines the Order aggregate's payment and item
// state with the acting user's role capabilities.
package services
