// Package validation checks inputs before csvfleet touches them: files that
// must exist and be readable, output directories that must be writable, and
// option structs carrying go-playground/validator tags (including the custom
// "delimiter" tag).
package validation
