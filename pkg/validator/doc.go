// Package validator builds declarative validation out of small Rule values.
//
// Each rule pairs a Check func with the ValidationError reported when the
// check fails. Apply evaluates all rules and returns the failures as a
// ValidationErrors value, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredString("sidebar.id", sig.ID),
//	    validator.MaxLenString("sidebar.id", sig.ID, 64),
//	)
//	if validator.IsValidationError(err) {
//	    // 400
//	}
//
// Rules are plain values with no shared state, so they are safe to build and
// apply from any goroutine.
package validator
