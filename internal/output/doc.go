// Package output persists composed strips and hands them to the printer.
//
// The dispatcher always writes the PNG before any print attempt, and a print
// failure deliberately leaves the file in place for a manual retry.
package output
