// Package docs Substation Annotation API.
//
// Backend for the aerial-imagery substation annotation tool. Subject-matter
// experts load substations, draw labeled component polygons on a map, and
// mark substations complete. Persistence is two whole-file JSON record
// collections; raster tiles are served from a static pyramid with an
// XYZ to TMS row flip.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//	- image/png
//
// swagger:meta
package docs
