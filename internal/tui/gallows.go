package tui

import "fmt"

const gallows = `  +---+
  |   |
  %c   |
 %c%c%c  |
 %c %c  |
      |
=========`

// Gallows renders the figure for n incorrect counts. The frame is always
// drawn; head, body, left arm, right arm, left leg and right leg appear at
// counts 1 through 6.
func Gallows(n int) string {
	part := func(at int, r rune) rune {
		if n >= at {
			return r
		}
		return ' '
	}
	return fmt.Sprintf(gallows,
		part(1, 'O'),
		part(3, '/'), part(2, '|'), part(4, '\\'),
		part(5, '/'), part(6, '\\'),
	)
}
