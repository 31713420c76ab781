package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/ui"
)

func main() {
	myApp := app.NewWithID("com.ytget.yt-desktop.video")
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	window := ui.NewVideoWindow(myApp, download.NewService())
	window.ShowAndRun()
}
