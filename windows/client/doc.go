// Package client captures the keyboard through a raw input window and
// writes what is typed to the host.
package client
