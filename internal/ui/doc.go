// Package ui provides the composition primitives shared by the widget
// views built with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view
//   - FocusManager: tracks and rotates focus across named areas
//   - Zone: a rectangular hit region for mouse dispatch
package ui
