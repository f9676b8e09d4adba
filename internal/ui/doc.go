// Package ui provides the terminal widgets for the interactive canvas
// viewer: the session sidebar, the footer with keybinding hints and
// transient status messages, and the shared lipgloss styles.
package ui
