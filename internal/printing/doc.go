// Package printing dispatches strip images to label printing hardware via an
// external command-line utility.
//
// The Printer interface is the seam the rest of the pipeline depends on;
// the CLI implementation shells out with a bounded timeout and an exclusive
// lock so concurrent invocations cannot interleave jobs on one printer.
package printing
