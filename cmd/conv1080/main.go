// Package main provides the CLI entry point for conv1080.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"conv1080/internal/config"
	"conv1080/internal/discovery"
	"conv1080/internal/errors"
	"conv1080/internal/ffmpeg"
	"conv1080/internal/hwaccel"
	"conv1080/internal/logging"
	"conv1080/internal/processing"
	"conv1080/internal/reporter"
	"conv1080/internal/util"
)

const (
	appName    = "conv1080"
	appVersion = "0.1.0"
)

// CLI flags
var (
	inputFlag    string
	outputFlag   string
	logDirFlag   string
	fontSizeFlag int
	formatsFlag  []string
	configFlag   string
	verboseFlag  bool
	noLogFlag    bool
)

var rootCmd = &cobra.Command{
	Use:           appName,
	Short:         "Batch video normalization to 1080p H.264",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `conv1080 converts a directory of videos to 1920x1080 MP4.

Sources smaller or larger than 1080p are scaled to fit and padded with
black bars to preserve the aspect ratio. The fastest available H.264
encoder is picked automatically (NVENC, AMF, QSV, then libx264). When a
SubRip subtitle file with the same base name sits next to a video, it is
burned into the output.`,
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert video files in a directory to 1080p MP4",
	Long: `Convert scans the input directory for video files and converts each one
in sequence. Files already at 1920x1080 with no subtitle to embed are
skipped, as are files whose output already exists.

Examples:
  conv1080 convert -i /videos
  conv1080 convert -i /videos -o /videos/done --font-size 24
  conv1080 convert --formats mp4,mkv,avi -v`,
	RunE: runConvert,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", appName, appVersion)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input directory containing video files (default current directory)")
	convertCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (default INPUT/converted)")
	convertCmd.Flags().StringVarP(&logDirFlag, "log-dir", "l", "", "Log directory (default OUTPUT/logs)")
	convertCmd.Flags().IntVar(&fontSizeFlag, "font-size", config.DefaultSubtitleFontSize, "Font size for burned-in subtitles")
	convertCmd.Flags().StringSliceVar(&formatsFlag, "formats", nil, "Video extensions to process (default mp4,mkv)")
	convertCmd.Flags().StringVar(&configFlag, "config", "", "Path to a YAML config file")
	convertCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug messages in the run log")
	convertCmd.Flags().BoolVar(&noLogFlag, "no-log", false, "Disable log file creation")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig merges the config file (when present) with CLI flags.
// Explicitly set flags win over file values.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath := configFlag
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	if configPath != "" {
		loaded, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputDir = inputFlag
	}
	if flags.Changed("output") {
		cfg.OutputDir = outputFlag
	}
	if flags.Changed("log-dir") {
		cfg.LogDir = logDirFlag
	}
	if flags.Changed("font-size") {
		cfg.SubtitleFontSize = fontSizeFlag
	}
	if flags.Changed("formats") {
		cfg.VideoExtensions = formatsFlag
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verboseFlag
	}
	if flags.Changed("no-log") {
		cfg.NoLog = noLogFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	inputDir, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("invalid input path: %w", err)
	}
	cfg.InputDir = inputDir

	if !util.DirectoryExists(inputDir) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	// Fail fast if the external tools are missing.
	if err := ffmpeg.CheckPrerequisites(); err != nil {
		return err
	}

	files, err := discovery.FindVideoFiles(inputDir, cfg.NormalizedExtensions())
	if err != nil {
		if errors.IsNoFilesFound(err) {
			return fmt.Errorf("no video files (%s) found in %s",
				strings.Join(cfg.NormalizedExtensions(), ", "), inputDir)
		}
		return err
	}

	logger, err := logging.Setup(cfg.ResolvedLogDir(), cfg.Verbose, cfg.NoLog)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer func() { _ = logger.Close() }()

	logger.Info("discovered %d video file(s) in %s", len(files), inputDir)
	for i, f := range files {
		logger.Debug("  %d. %s", i+1, f)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rep := reporter.NewTerminalReporter()

	// Per-file failures end up in the printed summary; they do not make
	// the run itself fail.
	orch := processing.New(cfg, hwaccel.NewDetector(), logger)
	if _, err := orch.ProcessVideos(ctx, files, rep); err != nil {
		return err
	}

	if ctx.Err() != nil {
		return errors.NewCancelledError()
	}
	return nil
}
