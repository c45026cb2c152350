// Package domain models the canonical entities of the Ocean Guardian
// dashboard: hazard reports, social-media signals, aggregate statistics,
// ephemeral notifications, and the authenticated user.
//
// # Hazard taxonomy
//
// Hazard types form a closed enumeration (oil-spill, plastic-waste,
// chemical-pollution, marine-life, algae-bloom, debris). Unknown codes are
// not rejected; they render with a generic title-cased label so that data
// from a newer collector never breaks display.
//
// Severity is an ordered four-level scale (low < medium < high < critical).
// Reports at high or critical are treated as active hazards by the
// statistics aggregator and drawn with the pulsing marker styles. Any
// unrecognized severity value falls back to the medium mapping — one
// defined behavior for unknown input rather than an implicit lookup miss.
//
// # Identity
//
// Reports and social posts carry dense integer ids assigned by their owning
// store (max existing id + 1). Notification ids combine the creation time
// in unix milliseconds with a random suffix so two notifications pushed
// within the same millisecond never collide.
package domain
