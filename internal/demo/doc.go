// Package demo holds the calendar screens driven by the hcal commands: a
// week view that stays drawn under a closable event dialog.
package demo
