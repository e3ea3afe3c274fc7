package folio

// InputMode is the page-wide pointer capability.
type InputMode uint8

const (
	InputMouse InputMode = iota // hover-capable fine pointer
	InputTouch                  // coarse pointer without hover
)

func (m InputMode) String() string {
	if m == InputTouch {
		return "touch"
	}
	return "mouse"
}

// InputModeDetector holds the single capability flag. It is computed once
// at startup and changes only through Signal, which subscribers observe.
type InputModeDetector struct {
	mode      InputMode
	listeners []func(InputMode)
}

// NewInputModeDetector starts in the given mode.
func NewInputModeDetector(initial InputMode) *InputModeDetector {
	return &InputModeDetector{mode: initial}
}

// Mode returns the current mode.
func (d *InputModeDetector) Mode() InputMode {
	return d.mode
}

// OnChange registers fn and calls it once with the current mode so the
// component starts in sync.
func (d *InputModeDetector) OnChange(fn func(InputMode)) {
	d.listeners = append(d.listeners, fn)
	fn(d.mode)
}

// Signal reports the mode implied by the latest input. Listeners run only
// when it differs from the current mode. It reports whether the mode changed.
func (d *InputModeDetector) Signal(m InputMode) bool {
	if m == d.mode {
		return false
	}
	d.mode = m
	for _, fn := range d.listeners {
		guard("inputmode", func() { fn(m) })
	}
	return true
}
