package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-desktop/internal/download"
	"github.com/ytget/yt-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.yt-desktop"

func main() {
	fmt.Printf("YT Video Downloader v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDarkTheme())

	window := ui.NewVideoWindow(myApp, download.NewService())
	window.ShowAndRun()
}
