//go:build !darwin

package main

// wakeEvents returns nil: there are no wake notifications off macOS.
func wakeEvents() <-chan struct{} {
	return nil
}
