package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/SRombauts/HtmlBuilder/pkg/dom"
	"github.com/SRombauts/HtmlBuilder/pkg/publish"
)

// newS3Client is replaced in tests.
var newS3Client = func(ctx context.Context, region string) (publish.PutObjectAPI, error) {
	return publish.NewClient(ctx, region)
}

func publishCmd(flags *globalFlags) *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload rendered descriptions to S3",
		Long: `Render every description in paths.source and upload it to an S3
bucket as <prefix><name>.html.

Credentials come from the standard AWS configuration chain
(environment, shared config files, instance role).

Examples:
  htmlbuilder publish --bucket my-site
  htmlbuilder publish --bucket my-site --prefix docs/ --region eu-west-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
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

			ctx := cmd.Context()
			client, err := newS3Client(ctx, cfg.Publish.Region)
			if err != nil {
				return err
			}

			p, err := publish.New(client, cfg.Publish.Bucket,
				publish.WithPrefix(cfg.Publish.Prefix),
				publish.WithCacheControl(cfg.Publish.CacheControl),
				publish.WithRenderer(dom.NewRenderer(cfg.RenderConfig())),
			)
			if err != nil {
				return err
			}

			keys, err := p.PublishDir(ctx, cfg.SourcePath())
			out := cmd.ErrOrStderr()
			for _, key := range keys {
				info(out, "s3://%s/%s", cfg.Publish.Bucket, key)
			}
			if err != nil {
				return err
			}
			success(out, "Published %d documents", len(keys))
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target bucket (default from htmlbuilder.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from htmlbuilder.json)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from htmlbuilder.json or the AWS configuration)")

	return cmd
}
