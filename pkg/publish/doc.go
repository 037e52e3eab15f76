// Package publish uploads rendered documents to Amazon S3.
//
//	client, err := publish.NewClient(ctx, "eu-west-1")
//	if err != nil {
//	    return err
//	}
//	p, err := publish.New(client, "my-site", publish.WithPrefix("pages/"))
//	if err != nil {
//	    return err
//	}
//	keys, err := p.PublishDir(ctx, "docs")
package publish
