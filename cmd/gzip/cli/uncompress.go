package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var uncompressCmd = &cobra.Command{
	Use:   "uncompress [path]",
	Short: "Uncompress a .gz or .tar.gz artifact",
	Long: `Uncompress a compressed artifact, routed by suffix.

X.gz restores the file X; D.tar.gz restores the directory tree D. Any
other suffix is rejected.

Example:
  gzip uncompress notes.txt.gz
  gzip uncompress photos.tar.gz`,
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

		dest, err := c.UncompressPath(cmd.Context(), path)
		if err != nil {
			return err
		}

		fmt.Println(dest)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uncompressCmd)
}
