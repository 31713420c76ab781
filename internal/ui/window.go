package ui

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-desktop/internal/config"
	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/model"
)

// downloadWindow holds the widgets both windows share: the URL row, the
// destination row, the progress bar and the action buttons. The video
// and audio windows add their own option rows and provide the request
// builder.
type downloadWindow struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	loc      *Localization
	svc      download.Downloader

	urlEntry    *widget.Entry
	dirLabel    *widget.Label
	saveToLabel *widget.Label
	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	downloadBtn *widget.Button
	cancelBtn   *widget.Button
	pasteBtn    *widget.Button
	browseBtn   *widget.Button

	outputDir string
	titleKey  string

	// buildRequest collects the window-specific options into a request
	buildRequest func(url string) download.Request

	// onDirChanged lets the window persist its own directory key
	onDirChanged func(dir string)

	// onLanguageChanged lets the window retranslate its option row
	onLanguageChanged func()
}

// newDownloadWindow wires the shared widgets. The caller finishes the
// layout with its option row and calls finishSetup.
func newDownloadWindow(app fyne.App, titleKey string, svc download.Downloader, settings *config.Settings) *downloadWindow {
	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	w := &downloadWindow{
		app:      app,
		window:   app.NewWindow(loc.GetText(titleKey)),
		settings: settings,
		loc:      loc,
		svc:      svc,
		titleKey: titleKey,
	}

	w.urlEntry = widget.NewEntry()
	w.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	w.urlEntry.Validator = w.validateURL
	// Trigger download when user presses Enter in the URL field
	w.urlEntry.OnSubmitted = func(string) {
		w.onDownloadClick()
	}

	w.dirLabel = widget.NewLabel("")
	w.dirLabel.Truncation = fyne.TextTruncateEllipsis

	w.progressBar = widget.NewProgressBar()
	w.statusLabel = widget.NewLabel("")

	w.downloadBtn = widget.NewButton(loc.GetText(KeyDownload), w.onDownloadClick)
	w.downloadBtn.Importance = widget.HighImportance

	w.cancelBtn = widget.NewButton(loc.GetText(KeyCancel), w.onCancelClick)
	w.cancelBtn.Disable()

	svc.SetUpdateCallback(w.onTaskUpdate)

	return w
}

// finishSetup lays out the window around the option row and applies the
// stored geometry.
func (w *downloadWindow) finishSetup(optionRow fyne.CanvasObject, width, height float32) {
	w.pasteBtn = widget.NewButton(w.loc.GetText(KeyPaste), w.onPasteClick)
	urlRow := container.NewBorder(nil, nil, nil, w.pasteBtn, w.urlEntry)

	w.browseBtn = widget.NewButton(w.loc.GetText(KeyBrowse), w.onBrowseClick)
	w.saveToLabel = widget.NewLabel(w.loc.GetText(KeySaveTo) + ":")
	dirRow := container.NewBorder(nil, nil, w.saveToLabel, w.browseBtn, w.dirLabel)

	buttonRow := container.NewHBox(w.downloadBtn, w.cancelBtn)

	rows := []fyne.CanvasObject{urlRow, dirRow}
	if optionRow != nil {
		rows = append(rows, optionRow)
	}
	rows = append(rows, w.progressBar, w.statusLabel, buttonRow)

	w.createMenu()

	w.window.SetContent(container.NewVBox(rows...))
	w.window.Resize(fyne.NewSize(width, height))
	w.window.SetFixedSize(true)
}

// createMenu builds the language menu. Recreated on every language
// change so the checkmark follows the selection.
func (w *downloadWindow) createMenu() {
	languageMenu := fyne.NewMenu(w.loc.GetText(KeyLanguage))

	for code, name := range w.loc.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			w.onLanguageChange(langCode)
		})

		// Mark current language
		if w.loc.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	w.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (w *downloadWindow) onLanguageChange(langCode string) {
	w.loc.SetLanguage(langCode)
	w.settings.SetLanguage(langCode)

	w.refreshUITexts()

	// Recreate menu to update checkmarks
	w.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (w *downloadWindow) refreshUITexts() {
	w.window.SetTitle(w.loc.GetText(w.titleKey))
	w.urlEntry.SetPlaceHolder(w.loc.GetText(KeyEnterURL))
	w.downloadBtn.SetText(w.loc.GetText(KeyDownload))
	w.cancelBtn.SetText(w.loc.GetText(KeyCancel))
	w.pasteBtn.SetText(w.loc.GetText(KeyPaste))
	w.browseBtn.SetText(w.loc.GetText(KeyBrowse))
	w.saveToLabel.SetText(w.loc.GetText(KeySaveTo) + ":")

	if w.onLanguageChanged != nil {
		w.onLanguageChanged()
	}
}

// setOutputDir updates the destination label and remembers the choice
func (w *downloadWindow) setOutputDir(dir string) {
	w.outputDir = dir
	w.dirLabel.SetText(shortenPath(dir))
	if w.onDirChanged != nil {
		w.onDirChanged(dir)
	}
}

// validateURL gives inline feedback while typing. Empty is allowed so
// the entry does not start out red.
func (w *downloadWindow) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// onDownloadClick handles the download button click
func (w *downloadWindow) onDownloadClick() {
	urlText := strings.TrimSpace(w.urlEntry.Text)
	if urlText == "" {
		dialog.ShowError(errors.New(w.loc.GetText(KeyPleaseEnterURL)), w.window)
		return
	}

	if err := w.validateURL(urlText); err != nil {
		dialog.ShowError(fmt.Errorf("%s: %v", w.loc.GetText(KeyInvalidURL), err), w.window)
		return
	}

	log.Printf("Starting download for URL: %s", urlText)

	req := w.buildRequest(urlText)
	task, err := w.svc.Start(req)
	if err != nil {
		if errors.Is(err, download.ErrBusy) {
			dialog.ShowError(errors.New(w.loc.GetText(KeyBusy)), w.window)
			return
		}
		dialog.ShowError(err, w.window)
		return
	}

	log.Printf("Download started: ID=%s", task.ID)

	w.setBusy(true)
	w.progressBar.SetValue(0)
	w.statusLabel.SetText("")
}

// onCancelClick requests cancellation of the running download
func (w *downloadWindow) onCancelClick() {
	if err := w.svc.Cancel(); err != nil {
		log.Printf("Cancel failed: %v", err)
	}
}

// onPasteClick fills the URL entry from the clipboard
func (w *downloadWindow) onPasteClick() {
	content := fyne.CurrentApp().Clipboard().Content()
	if strings.TrimSpace(content) == "" {
		dialog.ShowInformation(w.loc.GetText(KeyPaste), w.loc.GetText(KeyClipboardEmpty), w.window)
		return
	}
	w.urlEntry.SetText(strings.TrimSpace(content))
}

// onBrowseClick lets the user pick the destination directory
func (w *downloadWindow) onBrowseClick() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, w.window)
			return
		}
		if uri == nil {
			return // canceled
		}
		w.setOutputDir(uri.Path())
	}, w.window)
}

// setBusy flips the button states around a running download. Exactly
// one of Download/Cancel is enabled at any time.
func (w *downloadWindow) setBusy(busy bool) {
	if busy {
		w.downloadBtn.Disable()
		w.cancelBtn.Enable()
	} else {
		w.downloadBtn.Enable()
		w.cancelBtn.Disable()
	}
}

// onTaskUpdate handles task updates from the download service. It runs
// on the worker goroutine, so every widget touch goes through fyne.Do.
func (w *downloadWindow) onTaskUpdate(task *model.DownloadTask) {
	fyne.Do(func() {
		w.progressBar.SetValue(task.Progress)
		w.statusLabel.SetText(task.StatusText())

		switch task.Status {
		case model.TaskStatusCompleted:
			w.setBusy(false)
			w.notifyCompletion(task)
		case model.TaskStatusError:
			w.setBusy(false)
			log.Printf("Download %s failed: %s", task.ID, task.LastError)
			w.app.SendNotification(&fyne.Notification{
				Title:   w.loc.GetText(KeyDownloadFailed),
				Content: task.UserMessage,
			})
			dialog.ShowError(errors.New(task.UserMessage), w.window)
		case model.TaskStatusStopped:
			w.setBusy(false)
		}
	})
}

// notifyCompletion shows the completion dialog and a system notification
func (w *downloadWindow) notifyCompletion(task *model.DownloadTask) {
	title := w.loc.GetText(KeyDownloadComplete)
	message := task.GetDisplayTitle()

	w.app.SendNotification(&fyne.Notification{
		Title:   title,
		Content: message,
	})

	dialog.ShowInformation(title, message, w.window)
}

// Show displays the window
func (w *downloadWindow) Show() {
	w.window.Show()
}

// ShowAndRun displays the window and runs the application loop
func (w *downloadWindow) ShowAndRun() {
	w.window.ShowAndRun()
}

// shortenPath trims long directory paths for the destination label
func shortenPath(path string) string {
	if len(path) <= DirLabelMaxChars {
		return path
	}
	return "..." + path[len(path)-DirLabelMaxChars:]
}
