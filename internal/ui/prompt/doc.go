// Package prompt provides simple interactive prompts.
//
// Available prompts:
//   - [Lines]: line range input, validated as the user confirms
package prompt
