// Package config binds the SeattleWaste configuration section and loads the
// process settings of the options tool.
//
// The section is read from a JSON or YAML document:
//
//	{
//	  "SeattleWaste": {
//	    "Resources": [
//	      {"slug": "recycling", "address": "2133 N 61ST ST"},
//	      {"slug": "compost", "address": "2133 N 61ST ST"}
//	    ]
//	  }
//	}
//
// Keys are matched case-insensitively, preferring an exact match. A missing
// section or a null document binds to an empty record; a malformed entry
// fails the bind with a *BindingError. A leading UTF-8 byte order mark is
// ignored. Setting SEATTLEWASTE__RESOURCES to "address:slug,address:slug"
// replaces the document's list.
//
// Example usage:
//
//	opts, err := config.LoadFile("appsettings.json", config.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := opts.Lookup("recycling")
//
// Process settings come from environment variables:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg)
package config
