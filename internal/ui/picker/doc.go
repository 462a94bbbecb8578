// Package picker provides an interactive fuzzy file picker.
//
// The picker renders on stderr so stdout stays free for the link, and
// ranks candidates with sahilm/fuzzy as the user types.
package picker
