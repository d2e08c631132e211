// Package notify implements the fire-and-forget acknowledgement shown after the
// consultation form is sent: a toast with an expiry and an optional audio chime.
package notify
