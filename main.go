package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/ytget/ytpro/internal/config"
	"github.com/ytget/ytpro/internal/convert"
	"github.com/ytget/ytpro/internal/download"
	"github.com/ytget/ytpro/internal/logging"
	"github.com/ytget/ytpro/internal/platform"
	"github.com/ytget/ytpro/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.ytpro"

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Init(env.Debug)
	log.Info().Str("version", version).Msg("ytpro starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewAppTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(ui.WindowSize())
	myWindow.SetFixedSize(true)

	settings := config.NewSettings(myApp)
	if err := platform.EnsureDir(settings.GetOutputDirectory()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure downloads dir")
	}

	playlists := platform.NewPlaylistParser()
	playlists.SetTimeout(env.PlaylistTimeout)

	source := platform.NewYouTubeSource()
	services := ui.Services{
		Downloader: download.NewOrchestrator(source),
		Playlists:  playlists,
	}

	if converter, err := convert.NewFFmpegConverter(); err == nil {
		services.Transcoder = download.NewOrchestrator(source,
			download.WithConverter(converter),
			download.WithTagger(convert.NewID3Tagger()),
		)
	} else {
		log.Info().Err(err).Msg("mp3 transcoding unavailable")
	}

	ui.NewRootUI(myWindow, myApp, services)

	myWindow.ShowAndRun()
}
