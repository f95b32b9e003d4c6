package scene

// Frame is the placed rectangle of one node.
type Frame struct {
	ID        string  `json:"id" toml:"id" yaml:"id"`
	Path      string  `json:"path" toml:"path" yaml:"path"`
	Depth     int     `json:"depth" toml:"depth" yaml:"depth"`
	Weight    float64 `json:"weight" toml:"weight" yaml:"weight"`
	Container bool    `json:"container,omitempty" toml:"container,omitempty" yaml:"container,omitempty"`
	X         float64 `json:"x" toml:"x" yaml:"x"`
	Y         float64 `json:"y" toml:"y" yaml:"y"`
	Width     float64 `json:"width" toml:"width" yaml:"width"`
	Height    float64 `json:"height" toml:"height" yaml:"height"`
}

// MaxX returns the right edge of the frame.
func (f Frame) MaxX() float64 { return f.X + f.Width }

// MaxY returns the bottom edge of the frame.
func (f Frame) MaxY() float64 { return f.Y + f.Height }

// Layout is an arranged scene: the root's measured size and every node's
// frame in placement order (parents before their children).
type Layout struct {
	Name   string  `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Width  float64 `json:"width" toml:"width" yaml:"width"`
	Height float64 `json:"height" toml:"height" yaml:"height"`
	Frames []Frame `json:"frames" toml:"frames" yaml:"frames"`
}

// Frame returns the frame with the given ID.
func (l *Layout) Frame(id string) (Frame, bool) {
	for _, f := range l.Frames {
		if f.ID == id {
			return f, true
		}
	}
	return Frame{}, false
}
