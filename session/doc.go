// Package session drives the interactive exploration loop: it prompts for a
// city, month and day, loads the filtered trips, prints every report section,
// offers to page through raw rows and asks whether to start over.
//
// Input and output are plain io.Reader / io.Writer values so the whole loop
// can be scripted.
package session
