package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-desktop/internal/config"
	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/model"
	"github.com/ytget/yt-desktop/internal/platform"
	"github.com/ytget/yt-desktop/internal/validate"
)

// AudioWindow downloads audio in a selectable format, optionally for a
// whole playlist.
type AudioWindow struct {
	*downloadWindow

	formatSelect  *widget.Select
	formatLabel   *widget.Label
	playlistCheck *widget.Check
	inspector     *platform.PlaylistInspector
}

// NewAudioWindow creates the audio download window
func NewAudioWindow(app fyne.App, svc download.Downloader) *AudioWindow {
	settings := config.NewSettings(app)

	base := newDownloadWindow(app, KeyAudioTitle, svc, settings)

	aw := &AudioWindow{
		downloadWindow: base,
		inspector:      platform.NewPlaylistInspector(),
	}

	aw.formatSelect = widget.NewSelect(download.AudioFormatNames, func(selected string) {
		settings.SetAudioFormat(selected)
	})
	aw.formatSelect.SetSelected(settings.GetAudioFormat())

	aw.playlistCheck = widget.NewCheck(base.loc.GetText(KeyWholePlaylist), func(checked bool) {
		settings.SetPlaylistMode(checked)
		if checked {
			aw.showPlaylistSummary()
		}
	})
	aw.playlistCheck.SetChecked(settings.GetPlaylistMode())

	aw.formatLabel = widget.NewLabel(base.loc.GetText(KeyFormat) + ":")
	optionRow := container.NewBorder(nil, nil, aw.formatLabel, aw.playlistCheck, aw.formatSelect)

	base.buildRequest = aw.buildRequest
	base.onDirChanged = settings.SetAudioDirectory
	base.onLanguageChanged = func() {
		aw.formatLabel.SetText(base.loc.GetText(KeyFormat) + ":")
		aw.playlistCheck.Text = base.loc.GetText(KeyWholePlaylist)
		aw.playlistCheck.Refresh()
	}

	dir := settings.GetAudioDirectory()
	platform.CreateDirectoryIfNotExists(dir)
	base.setOutputDir(dir)

	base.finishSetup(optionRow, AudioWindowWidth, AudioWindowHeight)

	return aw
}

// buildRequest collects the window state into a download request
func (aw *AudioWindow) buildRequest(url string) download.Request {
	return download.Request{
		URL:         url,
		Mode:        model.ModeAudio,
		AudioFormat: aw.formatSelect.Selected,
		Playlist:    aw.playlistCheck.Checked,
		OutputDir:   aw.outputDir,
	}
}

// showPlaylistSummary resolves the playlist behind the entered URL in
// the background and reports its title and size, so the user knows what
// a whole-playlist download will pull in before starting it.
func (aw *AudioWindow) showPlaylistSummary() {
	url := strings.TrimSpace(aw.urlEntry.Text)
	if url == "" || !strings.Contains(url, validate.PlaylistParam) {
		return
	}

	go func() {
		summary, err := aw.inspector.Inspect(context.Background(), url)
		if err != nil {
			log.Printf("Playlist inspection failed: %v", err)
			return
		}

		text := fmt.Sprintf("%s: %s (%d)", aw.loc.GetText(KeyPlaylistInfo), summary.Title, summary.Count)
		if summary.Capped {
			text += "+"
		}
		fyne.Do(func() {
			aw.statusLabel.SetText(text)
		})
	}()
}
