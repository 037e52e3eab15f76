// Package config provides configuration parsing for HtmlBuilder projects.
//
// The configuration is stored in htmlbuilder.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "site",
//	  "render": {
//	    "indent": "  ",
//	    "newline": "\n",
//	    "escape": true
//	  },
//	  "paths": {
//	    "source": "docs",
//	    "output": "dist"
//	  },
//	  "serve": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "watch": true,
//	    "pollInterval": "500ms"
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "pages/",
//	    "cacheControl": "max-age=300"
//	  },
//	  "log": {
//	    "level": "info"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
