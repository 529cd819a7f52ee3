// Package services defines the shared error taxonomy for the label pipeline.
//
// Every failure surfaced to the user is tagged with one of the sentinel
// markers here so the CLI can report a distinct exit status per error kind.
// Components wrap their failures with Wrap rather than building ad-hoc error
// strings, keeping messages uniform across the pipeline.
package services
