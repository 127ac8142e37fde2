package cli

import (
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/iamNilotpal/gzip/config"
	"github.com/iamNilotpal/gzip/internal/core/domain"
	"github.com/iamNilotpal/gzip/internal/core/services/codec"
	"github.com/iamNilotpal/gzip/pkg/logger"
)

var (
	level      uint8
	chunkSize  int
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "gzip",
	Short: "Compress and uncompress files and directories with GZIP",
	Long: `A compression-method adapter over the GZIP container format.
Files compress to X.gz; directories are tar-archived first and compress
to D.tar.gz. Both artifacts interoperate with any standard tar/gzip
toolchain.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	defaults := appconfig.DefaultConfig()
	rootCmd.PersistentFlags().Uint8VarP(&level, "level", "l", defaults.CompressionLevel, "compression level (0-9)")
	rootCmd.PersistentFlags().IntVar(&chunkSize, "chunk-size", defaults.ChunkSize, "streaming chunk size in bytes")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
}

// newCodec wires config, logger and the default adapters into a codec.
// Flags override the config file; the config file overrides defaults.
func newCodec() (*codec.Codec, func(), error) {
	cfg := appconfig.DefaultConfig()
	if configPath != "" {
		loaded, err := appconfig.LoadConfig(configPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if rootCmd.PersistentFlags().Changed("level") {
		cfg.CompressionLevel = level
	}
	if rootCmd.PersistentFlags().Changed("chunk-size") {
		cfg.ChunkSize = chunkSize
	}

	log := logger.New("gzip")

	c, err := codec.New(codec.Config{
		Options: &domain.CompressionOptions{
			Level:     cfg.CompressionLevel,
			ChunkSize: cfg.ChunkSize,
		},
		Logger: log,
	})
	if err != nil {
		log.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		log.Sync()
	}
	return c, cleanup, nil
}
