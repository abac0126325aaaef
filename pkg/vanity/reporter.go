package vanity

// Reporter renders search progress.
//
// Report is started in its own goroutine when the search starts. It should
// periodically read progress until stop is latched, then return; the engine
// waits for it before handing back the result.
type Reporter interface {
	Report(progress *Progress, stop *StopFlag)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(progress *Progress, stop *StopFlag)

// Report calls f.
func (f ReporterFunc) Report(progress *Progress, stop *StopFlag) {
	f(progress, stop)
}
