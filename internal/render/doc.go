// Package render turns asset IDs into label rasters.
//
// Each label cell pairs a QR code encoding the asset's inventory URL with the
// ID text, and cells compose left-to-right (optionally wrapping into rows)
// into one strip image sized for the printer tape. Rendering is computed
// fresh on every call and never writes partial output; failures surface as
// encoding or resource errors before any file is produced.
package render
