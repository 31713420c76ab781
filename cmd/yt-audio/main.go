package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/ui"
)

func main() {
	myApp := app.NewWithID("com.ytget.yt-desktop.audio")
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	window := ui.NewAudioWindow(myApp, download.NewService())
	window.ShowAndRun()
}
