// Package logging provides zerolog-based structured logging for carbonfocus.
//
// Loggers are carried through context.Context. Commands create a root logger
// from configuration, attach a trace ID, and store the logger on the command
// context; library packages retrieve it with FromContext and add their own
// component and operation fields.
package logging
