// Package session manages the canvas files that back each terminal session.
// A session is a markdown file in the canvas directory; its name is the
// filename without the .md extension. Sessions are ordered by modification
// time, newest first, so the most recently written canvas is the one the
// viewer opens by default.
package session
