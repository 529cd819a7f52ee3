// Package main hosts the labelstrip CLI entrypoint and command graph.
//
// The root command runs the generation pipeline end to end: expand the asset
// ID range, render the label strip, write the PNG, and optionally dispatch it
// to the printer. Supporting subcommands handle configuration scaffolding and
// external tool preflight. Keep this package lean: the pipeline itself lives
// in the internal packages and is surfaced here through flags.
package main
