// Package host plays the key events a client sends on the interactive
// Windows desktop.
package host
