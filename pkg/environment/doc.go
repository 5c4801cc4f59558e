// Package environment names the environment a storefront tool runs in
// (development, staging, production) and carries it through context.Context
// so structured logs can be tagged with it.
//
// # Usage
//
//	env := environment.Parse(cfg.AppEnv)
//	ctx = environment.WithContext(ctx, env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
