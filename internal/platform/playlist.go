package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-desktop/internal/validate"
)

// Timeout constants
const (
	DefaultInspectTimeout = 60 * time.Second
)

// Playlist limits
const (
	MaxPlaylistItems = 500
)

// URL parameter separator
const (
	ParamSeparator = "&"
)

// Playlist title constants
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// PlaylistSummary describes a playlist before it is downloaded, so the
// user can see what a playlist download would pull in.
type PlaylistSummary struct {
	ID     string
	Title  string
	Count  int
	Capped bool
}

// PlaylistInspector fetches playlist metadata without downloading media.
type PlaylistInspector struct {
	timeout time.Duration
}

// NewPlaylistInspector creates a new inspector with the default timeout.
func NewPlaylistInspector() *PlaylistInspector {
	return &PlaylistInspector{
		timeout: DefaultInspectTimeout,
	}
}

// SetTimeout sets the timeout for inspect operations
func (p *PlaylistInspector) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Inspect resolves the playlist behind url and returns its title and
// item count, capped at MaxPlaylistItems.
func (p *PlaylistInspector) Inspect(ctx context.Context, url string) (*PlaylistSummary, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %v", err)
	}

	summary := &PlaylistSummary{
		ID:    playlistID,
		Count: len(items),
	}
	if summary.Count > MaxPlaylistItems {
		summary.Count = MaxPlaylistItems
		summary.Capped = true
	}

	titles := make([]string, 0, 2)
	for _, it := range items {
		titles = append(titles, it.Title)
		if len(titles) == 2 {
			break
		}
	}
	summary.Title = playlistTitle(titles)

	return summary, nil
}

// ExtractPlaylistID extracts the playlist ID from various URL formats
func ExtractPlaylistID(url string) string {
	if !strings.Contains(url, validate.PlaylistParam) {
		return ""
	}
	parts := strings.Split(url, validate.PlaylistParam)
	if len(parts) < 2 {
		return ""
	}
	playlistPart := parts[1]
	if strings.Contains(playlistPart, ParamSeparator) {
		playlistPart = strings.Split(playlistPart, ParamSeparator)[0]
	}
	return playlistPart
}

// playlistTitle derives a playlist title from the first item titles.
func playlistTitle(titles []string) string {
	if len(titles) == 0 {
		return DefaultPlaylistName
	}
	if len(titles) > 1 {
		commonPrefix := findCommonPrefix(titles[0], titles[1])
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return titles[0] + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
