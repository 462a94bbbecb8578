// Package ui provides terminal UI components for gitlink.
//
// Notifications go to stderr so stdout carries nothing but the link.
// Colors are downsampled to what the terminal supports (NO_COLOR is
// honored) by writing through a colorprofile writer.
//
// Subpackages:
//   - styles: shared lipgloss colors and styles
//   - picker: fuzzy file picker over tracked files
//   - prompt: line range prompt
package ui
