package logger

import "runtime"

// Location carries the call site a record is attributed to.
type Location struct {
	File     string
	Line     int
	Function string
}

// Here captures the caller's location. skip counts additional frames above
// the caller of Here itself.
func Here(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}
