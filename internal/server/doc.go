// Package server runs the local HTTP API together with the background
// workers it depends on.
//
// It owns the process lifecycle: loading the profile store, starting the
// persistence queue and the billing listener, serving requests, and on a
// stop signal shutting the listener down, flushing pending profile writes
// and stopping the workers, in that order.
package server
