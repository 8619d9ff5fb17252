// Package watch reloads the SeattleWaste section when its configuration file
// changes.
//
// A successful rebind replaces the whole record in a config.Store. A failed
// rebind is logged and the previous record stays active.
//
// Only the file's own directory is watched. Changes are picked up when the
// file is written, replaced by rename, or when the directory's ..data symlink
// is swapped the way Kubernetes updates a mounted ConfigMap. Other symlink
// layouts whose target lives in a different directory are not followed.
//
// Example usage:
//
//	store := config.NewStore(opts)
//	w := watch.New(path, store, logger, watch.WithDebounce(cfg.WatchDebounce))
//	if err := w.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package watch
