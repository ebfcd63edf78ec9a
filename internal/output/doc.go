// Package output serializes ranked family rows as tab-separated tables
// and renders the stdout preview. Tables are written to a temporary
// sibling file and renamed into place, so a failed run never leaves a
// partial table behind.
package output
