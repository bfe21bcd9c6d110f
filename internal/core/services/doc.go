// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Select and Resolve are pure functions: they hold no state, never
// fail, and never modify their inputs. Everything that touches a
// record source lives in ContentService and SurfaceMount.
//
// Services are pure Go with no CGO dependencies.
package services
