package renderer

type UiAction rune

const (
	Unknown   UiAction = iota
	Quit      UiAction = 81 // 'Q'
	Up        UiAction = 87 // 'W'
	Down      UiAction = 83 // 'S'
	UpAlt     UiAction = 73 // 'I'
	DownAlt   UiAction = 75 // 'K'
	UpArrow   UiAction = 8593
	DownArrow UiAction = 8595
)

const (
	ctrlC  = 3
	escape = 27
)

// ProcessInput turns one raw terminal read into actions. A single read can
// carry several key presses when keys auto repeat. Unknown keys are dropped.
func ProcessInput(raw []byte) (actions []UiAction) {
	for i := 0; i < len(raw); i++ {
		inputVal := int(raw[i])

		switch {
		case inputVal == ctrlC:
			actions = append(actions, Quit)
			continue
		case inputVal == escape && i+2 < len(raw) && raw[i+1] == '[':
			switch raw[i+2] {
			case 'A':
				actions = append(actions, UpArrow)
			case 'B':
				actions = append(actions, DownArrow)
			}
			i += 2
			continue
		}

		// Convert to UpperCase
		if inputVal >= 97 && inputVal <= 122 {
			inputVal = inputVal - 32
		}
		switch action := UiAction(inputVal); action {
		case Quit, Up, Down, UpAlt, DownAlt:
			actions = append(actions, action)
		}
	}
	return actions
}
