package bbexpr

// Logging helpers mirroring the teacher's log.go: thin wrappers over
// github.com/grailbio/base/log that tag each line with the variable
// name the message concerns, so a host's log stream can be grepped per
// variable without every call site formatting that prefix by hand.

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Debugf logs at debug level, prefixed with name.
func Debugf(name string, format string, args ...interface{}) {
	if log.At(log.Debug) {
		log.Output(2, log.Debug, name+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Logf logs at info level, prefixed with name.
func Logf(name string, format string, args ...interface{}) {
	if log.At(log.Info) {
		log.Output(2, log.Info, name+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
	}
}

// Errorf logs at error level, prefixed with name.
func Errorf(name string, format string, args ...interface{}) {
	log.Output(2, log.Error, name+": "+fmt.Sprintf(format, args...)) // nolint: errcheck
}
