package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toastui/internal/publish"
	"github.com/vango-dev/toastui/pkg/render"
)

func publishCmd(g *globals) *cobra.Command {
	var (
		bucket   string
		prefix   string
		region   string
		endpoint string
		fixture  string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render the gallery and upload it to S3",
		Long: `Render the gallery page, one fragment per toast and a manifest,
then upload them to the configured bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  toastui publish --bucket my-site --region eu-west-1
  toastui publish --endpoint http://localhost:9000 --bucket toasts --region us-east-1
  toastui publish --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := g.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if endpoint != "" {
				cfg.Publish.Endpoint = endpoint
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			f, err := loadFixture(cfg, fixture)
			if err != nil {
				return err
			}

			var client publish.ObjectPutter
			if !dryRun {
				s3Client, err := publish.NewS3Client(cfg.Publish, nil)
				if err != nil {
					return err
				}
				client = s3Client
			}

			p := publish.New(client, cfg.Publish,
				publish.WithLogger(logger),
				publish.WithStyleSheet(cfg.Gallery.StyleSheet),
				publish.WithRenderConfig(render.RendererConfig{
					Pretty: cfg.Render.Pretty,
					Indent: strings.Repeat(" ", cfg.Render.Indent),
				}),
				publish.WithDryRun(dryRun),
			)

			res, err := p.Publish(cmd.Context(), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, o := range res.Objects {
				info(out, "s3://%s/%s (%d bytes)", res.Bucket, o.Key, o.Size)
			}
			if dryRun {
				success(out, "Dry run: %d objects rendered", len(res.Objects))
			} else {
				success(out, "Published %d objects", len(res.Objects))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket name (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from config)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from config)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Custom S3 endpoint for compatible stores")
	cmd.Flags().StringVar(&fixture, "fixture", "", "Gallery fixture YAML (default from config or built-in)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without uploading")

	return cmd
}
