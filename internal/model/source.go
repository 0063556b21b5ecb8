// Package model defines the data structures shared by the verdict packages.
package model

// Path represents a file system path.
type Path string

// SuiteHandle is the resolved, executable form of a requested suite name.
type SuiteHandle struct {
	// Name is the suite name as requested on the command line. It becomes the
	// suite segment of every identifier the engine reports for this suite.
	Name string
	// Dir is the absolute package directory.
	Dir Path
	// ImportPath is the Go import path of the package in Dir.
	ImportPath string
	// ModuleRoot is the directory holding the go.mod that owns Dir.
	ModuleRoot Path
	// Tests lists the top-level test functions selected by this suite.
	Tests []string
}
