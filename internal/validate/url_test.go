package validate

import (
	"strings"
	"testing"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{
			name: "valid https URL",
			raw:  "https://www.youtube.com/watch?v=abc123",
			want: "https://www.youtube.com/watch?v=abc123",
		},
		{
			name: "trims whitespace",
			raw:  "  https://youtu.be/abc123  ",
			want: "https://youtu.be/abc123",
		},
		{
			name:    "empty URL",
			raw:     "",
			wantErr: "please enter a URL",
		},
		{
			name:    "whitespace only",
			raw:     "   ",
			wantErr: "please enter a URL",
		},
		{
			name:    "too long",
			raw:     "https://youtube.com/watch?v=" + strings.Repeat("a", MaxURLLength),
			wantErr: "URL is too long",
		},
		{
			name:    "wrong scheme",
			raw:     "ftp://youtube.com/watch?v=abc",
			wantErr: "URL must use http or https",
		},
		{
			name:    "no scheme",
			raw:     "youtube.com/watch?v=abc",
			wantErr: "URL must use http or https",
		},
		{
			name:    "dangerous characters",
			raw:     "https://youtube.com/watch?v=<script>",
			wantErr: "URL contains invalid characters",
		},
		{
			name:    "backtick",
			raw:     "https://youtube.com/watch?v=`id`",
			wantErr: "URL contains invalid characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeURL(tt.raw)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("SanitizeURL(%q) expected error %q, got nil", tt.raw, tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("SanitizeURL(%q) error = %q, expected %q", tt.raw, err.Error(), tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizeURL(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, expected %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtube.com/watch?v=abc123",
		"https://m.youtube.com/watch?v=abc123",
		"https://music.youtube.com/watch?v=abc123",
		"https://youtu.be/abc123",
		"http://youtu.be/abc123",
	}
	for _, url := range valid {
		if _, err := ValidateURL(url); err != nil {
			t.Errorf("ValidateURL(%q) unexpected error: %v", url, err)
		}
	}

	invalid := []string{
		"https://vimeo.com/12345",
		"https://notyoutube.com/watch?v=abc",
		"https://youtube.com.evil.com/watch?v=abc",
		"https://example.com/youtube.com",
	}
	for _, url := range invalid {
		_, err := ValidateURL(url)
		if err == nil {
			t.Errorf("ValidateURL(%q) expected error, got nil", url)
			continue
		}
		if err.Error() != "not a YouTube URL" {
			t.Errorf("ValidateURL(%q) error = %q, expected 'not a YouTube URL'", url, err.Error())
		}
	}
}

func TestValidatePlaylistURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name: "playlist URL",
			url:  "https://www.youtube.com/playlist?list=PLtest123",
		},
		{
			name: "watch URL with list parameter",
			url:  "https://www.youtube.com/watch?v=abc&list=PLtest123",
		},
		{
			name:    "plain watch URL",
			url:     "https://www.youtube.com/watch?v=abc123",
			wantErr: true,
		},
		{
			name:    "non-youtube playlist",
			url:     "https://example.com/playlist?list=PLtest123",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidatePlaylistURL(tt.url)
			if tt.wantErr && err == nil {
				t.Errorf("ValidatePlaylistURL(%q) expected error, got nil", tt.url)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePlaylistURL(%q) unexpected error: %v", tt.url, err)
			}
		})
	}
}
