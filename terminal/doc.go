// Package terminal presents rendered frames on a text terminal.
//
// Two displays are provided:
//   - ANSIDisplay writes clear/home sequences followed by the frame text to any io.Writer
//   - TcellDisplay draws through a tcell screen with resize and quit-key handling
//
// Size detection and crash-time restoration (EmergencyReset) talk to the
// terminal directly via ioctl; no terminfo lookup is involved.
package terminal
