package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-desktop/internal/config"
	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/model"
	"github.com/ytget/yt-desktop/internal/platform"
)

// VideoWindow downloads a single video at a selectable quality.
type VideoWindow struct {
	*downloadWindow

	qualitySelect *widget.Select
	qualityLabel  *widget.Label
}

// NewVideoWindow creates the video download window
func NewVideoWindow(app fyne.App, svc download.Downloader) *VideoWindow {
	settings := config.NewSettings(app)

	base := newDownloadWindow(app, KeyVideoTitle, svc, settings)

	vw := &VideoWindow{downloadWindow: base}

	vw.qualitySelect = widget.NewSelect(download.VideoQualityNames, func(selected string) {
		settings.SetVideoQuality(selected)
	})
	vw.qualitySelect.SetSelected(settings.GetVideoQuality())

	vw.qualityLabel = widget.NewLabel(base.loc.GetText(KeyQuality) + ":")
	qualityRow := container.NewBorder(nil, nil, vw.qualityLabel, nil, vw.qualitySelect)

	base.buildRequest = vw.buildRequest
	base.onDirChanged = settings.SetVideoDirectory
	base.onLanguageChanged = func() {
		vw.qualityLabel.SetText(base.loc.GetText(KeyQuality) + ":")
	}

	dir := settings.GetVideoDirectory()
	platform.CreateDirectoryIfNotExists(dir)
	base.setOutputDir(dir)

	base.finishSetup(qualityRow, VideoWindowWidth, VideoWindowHeight)

	return vw
}

// buildRequest collects the window state into a download request
func (vw *VideoWindow) buildRequest(url string) download.Request {
	return download.Request{
		URL:          url,
		Mode:         model.ModeVideo,
		VideoQuality: vw.qualitySelect.Selected,
		OutputDir:    vw.outputDir,
	}
}
