// Package ui builds the two Fyne windows (video and audio), the shared
// download window chrome and the dark theme.
package ui
