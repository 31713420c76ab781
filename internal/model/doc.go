// Package model contains the task types shared between the download
// service and the UI.
package model
