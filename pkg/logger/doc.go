// Package logger builds the *slog.Logger used by the storefront tools and
// provides attribute helpers that keep key names consistent across them.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the resulting handler with
// LogHandlerDecorator, which copies values such as the running environment
// from context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "seed"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "invalid record",
//	    logger.Collection("products"),
//	    logger.Index(3),
//	    logger.ValidationErrors(verrs),
//	)
package logger
