package main

import (
	"runtime"
)

// sourceFile returns the path of this file as recorded by the compiler
func sourceFile() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return programName
	}
	return file
}
