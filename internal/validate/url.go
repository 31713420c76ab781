package validate

import (
	"fmt"
	"net/url"
	"strings"
)

// Limits applied before a URL is handed to the engine
const (
	// MaxURLLength caps input size so a pathological paste cannot stall parsing
	MaxURLLength = 2048
)

// Characters never present in a legitimate watch/playlist URL
const dangerousChars = "<>\"{}|\\^`"

// Query parameter that identifies a playlist URL
const PlaylistParam = "list="

// Hosts the downloader accepts
var allowedHosts = []string{"youtube.com", "youtu.be"}

// SanitizeURL trims and structurally validates a raw URL without
// checking the host. It returns the cleaned URL.
func SanitizeURL(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	if cleaned == "" {
		return "", fmt.Errorf("please enter a URL")
	}

	if len(cleaned) > MaxURLLength {
		return "", fmt.Errorf("URL is too long")
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL must use http or https")
	}

	if strings.ContainsAny(cleaned, dangerousChars) {
		return "", fmt.Errorf("URL contains invalid characters")
	}

	return cleaned, nil
}

// ValidateURL sanitizes the URL and verifies it points at YouTube.
func ValidateURL(raw string) (string, error) {
	cleaned, err := SanitizeURL(raw)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}

	if !isAllowedHost(parsed.Hostname()) {
		return "", fmt.Errorf("not a YouTube URL")
	}

	return cleaned, nil
}

// ValidatePlaylistURL additionally requires the playlist query parameter,
// so playlist mode never falls back to a single-video download.
func ValidatePlaylistURL(raw string) (string, error) {
	cleaned, err := ValidateURL(raw)
	if err != nil {
		return "", err
	}

	if !strings.Contains(cleaned, PlaylistParam) {
		return "", fmt.Errorf("not a valid YouTube playlist URL: playlist URLs must contain a 'list=' parameter")
	}

	return cleaned, nil
}

// isAllowedHost matches the host or any of its subdomains against the whitelist
func isAllowedHost(host string) bool {
	host = strings.ToLower(host)
	for _, allowed := range allowedHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
