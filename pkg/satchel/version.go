// Package satchel carries project-wide metadata for the satchel library.
package satchel

// Version is the current satchel release.
const Version = "0.2.0"
