// Package core provides small buffer and numeric helpers shared by the
// kernel packages.
package core
