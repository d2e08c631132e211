// Package logger wraps zap for the landing preview:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and a file sink so logs never draw over the terminal screen.
//
// Sections and animators take a context and pull their logger from it, so every
// message carries the section name it came from.
package logger
