package collision

import (
	"fmt"
	"strings"
)

// Method selects one of the two equivalent formulations.
type Method uint8

const (
	// MethodAngleFree is the projection formulation. It is the reference method.
	MethodAngleFree Method = iota
	// MethodTrigonometric rotates into the contact-normal frame.
	MethodTrigonometric
)

func (m Method) String() string {
	switch m {
	case MethodAngleFree:
		return "angle-free"
	case MethodTrigonometric:
		return "trigonometric"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

// ParseMethod accepts the names produced by String plus a few spellings found in config files.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "angle-free", "angle_free", "anglefree", "free":
		return MethodAngleFree, nil
	case "trigonometric", "trigonometry", "trig":
		return MethodTrigonometric, nil
	default:
		return MethodAngleFree, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

func (m Method) MarshalText() ([]byte, error) {
	if m > MethodTrigonometric {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
