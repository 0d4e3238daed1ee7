// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The finder pipeline is built from:
//   - Ranker: scores a corpus snapshot against a query
//   - Dispatcher: runs ranking jobs off the consuming goroutine
//   - Feed: batches records from the input stream onto the bus
//   - EventBus and Controller: serialise events into session state
//
// OptionsService persists default finder options.
package services
