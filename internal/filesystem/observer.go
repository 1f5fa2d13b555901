package filesystem

// Observer records retry telemetry for filesystem operations. The
// implementation lives in the metrics package; defining the interface
// here keeps this package free of a metrics import.
type Observer interface {
	// ObserveRetryAttempt records one scheduled retry.
	// op is the operation: "stat" or "open".
	ObserveRetryAttempt(op string)

	// ObserveRetrySuccess records an operation that succeeded after
	// at least one retry.
	ObserveRetrySuccess(op string)

	// ObserveRetryFailure records an operation that exhausted its
	// retry budget.
	ObserveRetryFailure(op string)

	// ObserveStaleError records one ESTALE result.
	ObserveStaleError(op string)

	// ObserveRetryDuration records the total wall time of the
	// operation including backoff sleeps.
	ObserveRetryDuration(op string, seconds float64)
}

// nopObserver drops all telemetry. It stands in until SetObserver is
// called, which keeps tests and tools that never wire metrics quiet.
type nopObserver struct{}

func (nopObserver) ObserveRetryAttempt(string)           {}
func (nopObserver) ObserveRetrySuccess(string)           {}
func (nopObserver) ObserveRetryFailure(string)           {}
func (nopObserver) ObserveStaleError(string)             {}
func (nopObserver) ObserveRetryDuration(string, float64) {}

var defaultObserver Observer = nopObserver{}

// SetObserver sets the package-level retry observer. Call this once at
// startup after creating the observer implementation.
func SetObserver(o Observer) {
	if o == nil {
		defaultObserver = nopObserver{}
		return
	}
	defaultObserver = o
}
