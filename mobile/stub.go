//go:build !mobile

// Package mobile is the ebitenmobile binding entry for BirdDex. Build it
// with -tags mobile; without the tag the package is empty.
package mobile

// Dummy keeps the package buildable without the mobile tag.
func Dummy() {}
