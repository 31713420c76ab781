// Package download runs yt-dlp through the go-ytdlp bindings: it builds
// the engine invocation for a request, enforces the single in-flight
// download rule, translates engine progress into task updates and maps
// engine failures to user-facing messages.
package download
