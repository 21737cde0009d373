// Package cli implements the interactive command loop of the Shopfront
// account shell: login and registration, profile viewing and editing,
// the avatar and password sub-flows, and the read-only product catalog.
//
// The package is a thin I/O layer. All state transitions and persistence
// rules live in internal/client/services; the loop only prompts, parses
// and prints.
package cli
