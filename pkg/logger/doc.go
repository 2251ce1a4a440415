// Package logger builds slog loggers from functional options.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "bem"),
//		logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.InfoContext(ctx, "class names built", logger.Block("card"), logger.Modifiers(mods))
//
// New defaults to JSON at info level on stderr. WithEnvironment switches to
// text at debug level outside production and staging. WithContextValue adds
// a value stored in the request context to every record logged with that context.
//
// Attribute helpers (Error, Block, Element, Modifiers, ...) keep key names
// consistent. Error returns an empty Attr for a nil error, which slog drops.
package logger
