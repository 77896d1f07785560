package frame

import (
	"sync"

	"github.com/npillmayer/cssbox/core"
)

// ErrorReporter receives errors which occurred during layout or paint,
// instead of having them crash a client.
// kind is an error code from package core, e.g. core.ELAYOUT.
type ErrorReporter interface {
	Report(kind int, msg string, cause error)
}

// TraceReporter reports errors to the frame tracer.
type TraceReporter struct{}

// Report is part of interface ErrorReporter.
func (TraceReporter) Report(kind int, msg string, cause error) {
	tracer().Errorf("%v", core.WrapError(cause, kind, "%s", msg))
}

// ErrorLog collects reported errors.
type ErrorLog struct {
	sync.Mutex
	Errors []error
}

// Report is part of interface ErrorReporter.
func (elog *ErrorLog) Report(kind int, msg string, cause error) {
	err := core.WrapError(cause, kind, "%s", msg)
	tracer().Infof("error reported: %v", err)
	elog.Lock()
	defer elog.Unlock()
	elog.Errors = append(elog.Errors, err)
}

// Len returns the number of errors reported.
func (elog *ErrorLog) Len() int {
	elog.Lock()
	defer elog.Unlock()
	return len(elog.Errors)
}

// ReportError reports an error with the tree's reporter, or to the
// tracer if no reporter is set.
func (t *Tree) ReportError(kind int, msg string, cause error) {
	if t.Reporter == nil {
		TraceReporter{}.Report(kind, msg, cause)
		return
	}
	t.Reporter.Report(kind, msg, cause)
}
