// Package adapt is the failure-adaptation engine behind the throwing
// callables. Each Do* function applies one policy to a single call of shape
// func() (R, error):
// - DoRethrow: raise the error as a *lambda.UncheckedError panic
// - DoFallback: call an alternate; its failure propagates
// - DoOrReturn: substitute a fixed value
// - DoEscalate: replace the error with one built by an ErrorFactory
// - DoIgnoreChecked: drop returned errors, let panics through
// - DoIgnoreAll: drop returned errors and recover panics
//
// Policies are not combined. An Observer passed with WithObserver receives an
// Event for every failure a policy handles.
package adapt
