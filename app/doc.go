// @lixen: #focus{app[loop,stack,epoch]}
// Package app runs the application event loop and the screen stack.
//
// Architecture:
//   - One goroutine owns all screen, editor, and frame state. Terminal
//     input and async completions are merged onto a single channel so
//     every state mutation is totally ordered.
//   - Screens implement Screen and return an Action from each event;
//     the loop applies the action to the navigation stack.
//   - Collaborator calls (catalog, judge, auth) run on their own
//     goroutines and come back as Completion values tagged with the
//     epoch that started them; stale epochs are discarded.
package app
