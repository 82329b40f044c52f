// Package screen manages the stack of application screens.
//
// A System holds two stacks. The desired stack is what Push, Pop and
// Replace edit; it is cheap to change from any goroutine, including from
// inside screen callbacks. The committed stack holds the screens that have
// actually been initialized. Tick reconciles the two once per frame,
// running the lifecycle callbacks in a fixed order:
//
//	removed screens:  OnDeactive (if active), Deinit
//	previous top:     OnDeactive, glyph cache cleared unless tick-always
//	added screens:    Init, OnActive
//
// Only the topmost screen, plus screens reporting IsTickAlways, is ticked
// and contributes geometry to a frame.
//
// Screens stored in the desired stack are prototypes: Tick commits a Clone
// of each, so the same prototype may be pushed more than once.
package screen
