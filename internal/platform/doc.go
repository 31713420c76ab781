// Package platform contains OS-level helpers: default media directories,
// output path sanitization, disk space checks, ffmpeg discovery and
// playlist inspection.
package platform
