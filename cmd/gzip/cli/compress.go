package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var compressCmd = &cobra.Command{
	Use:   "compress [path]",
	Short: "Compress a file or directory",
	Long: `Compress a file or directory.

A file X becomes X.gz; a directory D becomes D.tar.gz. An existing
output is never overwritten: a second run produces X-1.gz, X-2.gz and
so on.

Example:
  gzip compress notes.txt
  gzip compress ./photos -l 9`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		c, cleanup, err := newCodec()
		if err != nil {
			return err
		}
		defer cleanup()
		defer c.Close(context.Background())

		dest, err := c.CompressPath(cmd.Context(), path)
		if err != nil {
			return err
		}

		fmt.Println(dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
}
