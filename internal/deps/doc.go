// Package deps preflights the external binaries labelstrip shells out to.
package deps
