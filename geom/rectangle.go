// Package geom holds the small out-of-core collaborators: a rectangle with
// explicit area computation and generic JSON conversion helpers.
package geom

import (
	"encoding/json"
	"fmt"
)

// Rectangle is a plain width/height pair.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle constructs a Rectangle. All decoded rectangles go through
// this factory so construction stays in one place.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns the rectangle area.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Encode converts any value to its JSON string form.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode value: %w", err)
	}
	return string(data), nil
}

// DecodeRectangle parses a JSON string into a Rectangle. The data is decoded
// into a plain structural value first and the result is built through
// NewRectangle - decoding never constructs the target type directly.
func DecodeRectangle(data string) (Rectangle, error) {
	var raw struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return Rectangle{}, fmt.Errorf("unable to decode rectangle: %w", err)
	}
	return NewRectangle(raw.Width, raw.Height), nil
}
