// Package storage keeps the small pieces of state shared between commands:
// newline-delimited host lists and single-value files in one data directory.
//
// Every save rewrites the whole file (last writer wins); a missing file reads
// as an empty list or zero value. Watch reports changes to the known files
// so a long-running process can react to another command's saves.
package storage
