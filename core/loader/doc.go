// Package loader mounts the service features on the router.
//
// A feature bundles a service and its HTTP handler. cmd/start registers the
// reconciliation, suggest and integrity features with a Manager, which loads
// them in registration order onto the router group of the configured base path.
//
//	mgr := loader.NewManager(logger)
//	mgr.Register(reconciliation.NewFeature(db, profile, cfg.Server, logger))
//	mgr.Register(suggest.NewFeature(db, profile, cfg.Server.SuggestLimit, logger))
//	if err := mgr.LoadAll(app.Group(cfg.Server.BasePath())); err != nil {
//	    ...
//	}
//
// Disabled features are skipped and logged; the first feature failing to load
// aborts LoadAll.
package loader
