// Package event provides the event descriptor rendered into calendar invites.
//
// A Descriptor is built once per invocation, validated, and handed by value to
// the calendar builder. The package also carries the fixed AI Engineer Summit
// 2025 descriptor used when no overrides are given.
package event
