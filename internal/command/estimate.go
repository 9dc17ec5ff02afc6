package command

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func estimateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate ./path/to/manifest.yaml",
		Short: "Estimate the monthly cost of the PersistentVolumeClaims in a manifest",
		Long: `Estimate the monthly storage cost of every PersistentVolumeClaim in a
Kubernetes manifest, priced as AWS EBS gp3 in us-east-1 ($0.08 per GB-month).

The manifest may hold any number of YAML documents separated by '---';
documents of other kinds are ignored.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return err
			}
			_, err := resolveManifestPath(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveManifestPath(args[0])
			if err != nil {
				return err
			}
			return app.Estimate(path)
		},
	}
	return cmd
}

// resolveManifestPath returns the absolute path of arg after checking that it
// names an existing, readable regular file.
func resolveManifestPath(arg string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", errors.Wrapf(err, "invalid path %q", arg)
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Errorf("path %q does not exist", arg)
	}
	if !info.Mode().IsRegular() {
		return "", errors.Errorf("path %q is not a file", arg)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("path %q is not readable", arg)
	}
	f.Close()
	return path, nil
}
