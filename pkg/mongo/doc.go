// Package mongo connects the storefront tools to MongoDB.
//
// Settings come from the environment (MONGODB_URI, MONGODB_DATABASE and the
// pool and retry knobs in Config). Connect pings the server before returning
// and retries transient failures; Store replaces whole collections, which is
// what the seed importer needs.
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	db, err := mongo.Open(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.WithoutCancel(ctx))
//
//	n, err := mongo.NewStore(db).Replace(ctx, "products", docs)
//
// Errors wrap ErrConnect, ErrHealthcheckFailed and ErrReplaceCollection.
package mongo
