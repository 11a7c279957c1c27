package kernel

import "strings"

// Color is a display name plus a CSS-style code ("#ffffff"). Catalog variants
// own colors; order line items keep a copy.
type Color struct {
	name string
	code string
}

func NewColor(name, code string) Color {
	return Color{name: strings.TrimSpace(name), code: strings.TrimSpace(code)}
}

func (c Color) Name() string { return c.name }
func (c Color) Code() string { return c.code }
