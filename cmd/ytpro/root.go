package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ytget/ytpro/internal/config"
	"github.com/ytget/ytpro/internal/convert"
	"github.com/ytget/ytpro/internal/download"
	"github.com/ytget/ytpro/internal/logging"
	"github.com/ytget/ytpro/internal/model"
	"github.com/ytget/ytpro/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	quality        string
	format         string
	output         string
	transcode      bool
	noPlaylist     bool
	playlistFolder bool
	playlistWait   time.Duration
	debug          bool

	env    *config.Env
	envErr error
)

var rootCmd = &cobra.Command{
	Use:     "ytpro [URL] [--quality Q] [--format mp4|mp3] [--output DIR]",
	Short:   "Download YouTube videos as MP4 or MP3",
	Version: version,
	Args:    cobra.ExactArgs(1),

	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(debug)
		return envErr
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := baseRequest(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		orch, err := newOrchestrator()
		if err != nil {
			return err
		}
		out := newTerminal(cmd.OutOrStdout())

		parser := platform.NewPlaylistParser()
		parser.SetTimeout(playlistWait)
		if !noPlaylist && parser.IsPlaylistURL(base.URL) {
			return downloadPlaylist(ctx, orch, parser, base, out)
		}

		return out.run(orch.Start(ctx, base))
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, FError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	env, envErr = config.LoadEnv()
	if envErr != nil {
		env = &config.Env{}
	}
	defaultQuality := model.DefaultQuality.String()
	if env.Quality != "" {
		defaultQuality = env.Quality
	}
	defaultFormat := strings.ToLower(model.DefaultFormat.String())
	if env.Format != "" {
		defaultFormat = env.Format
	}

	rootCmd.PersistentFlags().StringVarP(&quality, "quality", "q", defaultQuality, "Video quality (144p, 240p, 360p, 480p, 720p, 1080p) [$YTPRO_QUALITY]")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", defaultFormat, "Download format (mp4 or mp3) [$YTPRO_FORMAT]")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", env.Output, "Output directory, defaults to the Downloads folder [$YTPRO_OUTPUT]")
	rootCmd.PersistentFlags().BoolVar(&transcode, "transcode", env.Transcode, "Re-encode MP3 downloads with ffmpeg and tag them [$YTPRO_TRANSCODE]")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", env.Debug, "Enable debug logging [$YTPRO_DEBUG]")
	rootCmd.Flags().BoolVar(&noPlaylist, "no-playlist", false, "Download only the video when the URL also names a playlist")
	playlistTimeout := platform.DefaultPlaylistParseTimeout
	if env.PlaylistTimeout > 0 {
		playlistTimeout = env.PlaylistTimeout
	}
	rootCmd.Flags().DurationVar(&playlistWait, "playlist-timeout", playlistTimeout, "How long to wait for the playlist contents [$YTPRO_PLAYLIST_TIMEOUT]")
	rootCmd.Flags().BoolVar(&playlistFolder, "playlist-folder", false, "Save playlist videos into a folder named after the playlist")

	rootCmd.AddCommand(newBatchCmd())
}

// baseRequest builds a request for url from the global flags
func baseRequest(url string) (model.DownloadRequest, error) {
	req, err := requestDefaults()
	if err != nil {
		return req, err
	}
	req.URL = url
	req = req.Normalized()
	return req, download.Validate(req)
}

// requestDefaults returns the quality, format and directory of the flags
func requestDefaults() (model.DownloadRequest, error) {
	q, err := model.ParseQuality(quality)
	if err != nil {
		return model.DownloadRequest{}, err
	}
	f, err := model.ParseFormat(format)
	if err != nil {
		return model.DownloadRequest{}, err
	}

	dir := output
	if strings.TrimSpace(dir) == "" {
		dir, err = platform.DownloadsDir()
		if err != nil {
			return model.DownloadRequest{}, fmt.Errorf("failed to find the Downloads folder, use --output: %w", err)
		}
	}
	return model.DownloadRequest{Quality: q, Format: f, OutputDir: dir}, nil
}

// newOrchestrator wires the YouTube source and, with --transcode, ffmpeg
func newOrchestrator() (*download.Orchestrator, error) {
	opts := []download.Option{}
	if transcode {
		converter, err := convert.NewFFmpegConverter()
		if err != nil {
			return nil, err
		}
		opts = append(opts, download.WithConverter(converter), download.WithTagger(convert.NewID3Tagger()))
	}
	return download.NewOrchestrator(platform.NewYouTubeSource(), opts...), nil
}

// downloadPlaylist expands the playlist and downloads its entries in order
func downloadPlaylist(ctx context.Context, orch *download.Orchestrator, playlists download.PlaylistSource, base model.DownloadRequest, out *terminal) error {
	out.pending("Reading playlist...")
	playlist, err := playlists.ParsePlaylist(ctx, base.URL)
	if err != nil {
		return &download.LibraryError{Err: err}
	}
	log.Debug().Str("playlist", playlist.ID).Int("videos", playlist.Len()).Msg("playlist parsed")

	if playlistFolder {
		base.OutputDir = filepath.Join(base.OutputDir, download.PlaylistFolder(playlist.Title, playlist.ID))
	}

	out.header(fmt.Sprintf("%s (%d videos)", playlist.Title, playlist.Len()))
	return out.run(orch.StartBatch(ctx, playlist.Requests(base)))
}
