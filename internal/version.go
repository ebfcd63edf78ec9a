// Package internal holds shared constants for the rhymerank application.
package internal

// Version is the application version reported by --version.
const Version = "0.1.0"
