package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-settings/internal/config"
	"github.com/ytget/yt-settings/internal/download"
	"github.com/ytget/yt-settings/internal/locale"
	"github.com/ytget/yt-settings/internal/logger"
	"github.com/ytget/yt-settings/internal/platform"
	"github.com/ytget/yt-settings/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "YT Settings"

	WindowWidth  = 480
	WindowHeight = 240
)

func main() {
	myApp := app.NewWithID(config.AppID)
	prefs := myApp.Preferences()

	// The debug preference also raises the log level
	log := logger.New(os.Stderr, logger.LevelFor(prefs.BoolWithFallback(config.KeyDebug, false)))
	log.Info("starting", "app", AppName, "version", version)

	store := config.NewStore(prefs, config.WithLogger(log))
	cell := config.OpenAppSettings(store)
	defer cell.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	myApp.Settings().SetTheme(ui.NewSeedTheme(cell.Value()))
	ui.BindTheme(ctx, myApp.Settings(), cell)

	downloadsDir := store.EnsureVideoDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn("failed to ensure downloads dir", "dir", downloadsDir, "err", err)
	}
	if store.Debug() {
		log.Debug("yt-dlp invocation", "cmd", download.FromSettings(store).CommandLine(""))
	}

	loc := locale.NewLocalization()
	loc.SetLanguage(store.Language(), locale.SystemTag())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	myWindow.SetContent(ui.NewAppearancePanel(ctx, cell, loc).Content())

	myWindow.ShowAndRun()
}
