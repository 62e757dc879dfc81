// Package nlog wraps github.com/rs/zerolog behind a small interface so the
// rest of the module logs through Logger.Debug/Logger.Trace rather than
// importing zerolog directly.
//
// The default Logger is disabled (every call a no-op), silent by default;
// nonogrid.WithLogger swaps in a real one.
package nlog
