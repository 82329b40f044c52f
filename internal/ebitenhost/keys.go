package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/hcal/screen"
)

// keyMap lists the ebiten keys forwarded to screens.
var keyMap = buildKeyMap()

func buildKeyMap() map[ebiten.Key]screen.Key {
	m := map[ebiten.Key]screen.Key{
		ebiten.KeyEscape:       screen.KeyEscape,
		ebiten.KeyEnter:        screen.KeyEnter,
		ebiten.KeyNumpadEnter:  screen.KeyEnter,
		ebiten.KeyBackspace:    screen.KeyBackspace,
		ebiten.KeyTab:          screen.KeyTab,
		ebiten.KeySpace:        screen.KeySpace,
		ebiten.KeyDelete:       screen.KeyDelete,
		ebiten.KeyArrowUp:      screen.KeyUp,
		ebiten.KeyArrowDown:    screen.KeyDown,
		ebiten.KeyArrowLeft:    screen.KeyLeft,
		ebiten.KeyArrowRight:   screen.KeyRight,
		ebiten.KeyHome:         screen.KeyHome,
		ebiten.KeyEnd:          screen.KeyEnd,
		ebiten.KeyPageUp:       screen.KeyPageUp,
		ebiten.KeyPageDown:     screen.KeyPageDown,
		ebiten.KeyShiftLeft:    screen.KeyShift,
		ebiten.KeyShiftRight:   screen.KeyShift,
		ebiten.KeyControlLeft:  screen.KeyControl,
		ebiten.KeyControlRight: screen.KeyControl,
		ebiten.KeyAltLeft:      screen.KeyAlt,
		ebiten.KeyAltRight:     screen.KeyAlt,
	}
	runOf := func(keys []ebiten.Key, first screen.Key) {
		for i, k := range keys {
			m[k] = first + screen.Key(i)
		}
	}
	runOf([]ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE,
		ebiten.KeyF, ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ,
		ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN, ebiten.KeyO,
		ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT,
		ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY,
		ebiten.KeyZ,
	}, screen.KeyA)
	runOf([]ebiten.Key{
		ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2,
		ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
		ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
		ebiten.KeyDigit9,
	}, screen.Key0)
	runOf([]ebiten.Key{
		ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5,
		ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8, ebiten.KeyF9,
		ebiten.KeyF10, ebiten.KeyF11, ebiten.KeyF12,
	}, screen.KeyF1)
	return m
}

// mapKey returns the screen key for k.
func mapKey(k ebiten.Key) (screen.Key, bool) {
	sk, ok := keyMap[k]
	return sk, ok
}
