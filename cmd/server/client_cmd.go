package main

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/spf13/cobra"
	"github.com/studiosync/syncserver/internal/server/export"
	"github.com/studiosync/syncserver/internal/server/workspace"
	"github.com/studiosync/syncserver/internal/syncsdk"
)

func init() {
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newPullCmd())
}

type clientFlags struct {
	url       string
	projectID string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.url, "url", "u", "http://127.0.0.1:3001", "Sync server URL")
	cmd.Flags().StringVarP(&f.projectID, "project", "p", "", "Project id")
	cmd.MarkFlagRequired("project")
}

func (f *clientFlags) newClient(cmd *cobra.Command) (*syncsdk.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return syncsdk.New(&syncsdk.Config{
		BaseURL:   f.url,
		ProjectID: f.projectID,
		Secret:    cfg.Auth.Secret,
	})
}

func newPushCmd() *cobra.Command {
	var flags clientFlags
	var dest string

	cmd := &cobra.Command{
		Use:   "push <dir>",
		Short: "Push the source files of a local directory to a sync server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			return pushDir(cmd.Context(), client, args[0], dest, cmd)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&dest, "dest", "d", export.DefaultPrefix, "Destination directory inside the remote project")

	return cmd
}

func pushDir(ctx context.Context, client *syncsdk.Client, dir string, dest string, cmd *cobra.Command) error {
	walkCfg := export.DefaultConfig()
	walkCfg.SourceDir = "."
	walkCfg.Prefix = ""

	local, err := export.NewWalker(dir, &walkCfg).Walk(ctx)
	if err != nil {
		return err
	}

	files := make([]syncsdk.File, 0, len(local))
	for _, f := range local {
		files = append(files, syncsdk.File{Path: path.Join(dest, f.Path), Content: f.Content})
	}

	result, err := client.Push(ctx, files)
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		slog.Warn("push error", "error", e)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated %d, skipped %d, errors %d\n", result.Updated, result.Skipped, len(result.Errors))

	if len(result.Errors) > 0 {
		return fmt.Errorf("%d files failed to sync", len(result.Errors))
	}
	return nil
}

func newPullCmd() *cobra.Command {
	var flags clientFlags
	var out string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the exportable files of a project into a local directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient(cmd)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			return pullInto(cmd.Context(), client, out, cmd)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", ".", "Output directory")

	return cmd
}

func pullInto(ctx context.Context, client *syncsdk.Client, out string, cmd *cobra.Command) error {
	ws, err := workspace.New(out)
	if err != nil {
		return err
	}

	files, err := client.Export(ctx)
	if err != nil {
		return err
	}

	// exported paths come from the server and are written with the same root checks
	for _, f := range files {
		if err := ws.Write(f.Path, f.Content); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "pulled %d files into %s\n", len(files), ws.Root())
	return nil
}
