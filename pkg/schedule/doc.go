// Package schedule provides the cooperative idle-time scheduling used to
// pace render passes.
//
// The work loop never runs on a timer of its own. It asks a Scheduler for
// idle slots and performs units of work until the slot's Deadline reports
// that the budget is nearly exhausted, then re-requests a slot and resumes
// where it left off. This mirrors a browser's requestIdleCallback without
// depending on any host-provided primitive: a test harness can drive the
// loop synchronously with Immediate, while FrameScheduler paces work
// against wall-clock frames.
package schedule
