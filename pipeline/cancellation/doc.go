/*Package cancellation is a dispatch pipeline stage which lets in-flight requests finish
gracefully when their cancellation is requested.

A request opts in by exposing its partial response:

	type Upload struct {
		Files   []File
		results []*Result
	}

	func (u *Upload) Response() []*Result { return u.results }

When the handler fails with cancellation caused by the invocation's own context, the stage
resolves a finalizer for the request type and returns its result instead of the failure.
Requests without a specific finalizer are finalized by PassThrough, which returns the response
exactly as the handler left it. Any other failure, including cancellation of an unrelated
scope, is propagated unchanged.

Finalizers are collected once at startup:

	reg, err := cancellation.AddPipeline(m, []interface{}{new(UploadFinalizer)})

Handlers check cancellation cooperatively at their own sub-unit boundaries, e.g. with Check.
The stage hands next a context marked by WithScope, so an error made by Check tells whether it
comes from this invocation being canceled or from some other context, like a deadline the handler
set for its own sub-call.
*/
package cancellation
