package dump

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/ydom/node"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	TagColor ColorAttr = iota
	KeyColor
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range node.Kinds() {
		able := Colorable{Kind: k, Attr: TagColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = KeyColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

		able.Attr = ValueColor
		switch {
		case k.IsNumber():
			colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
		case k == node.NullKind, k == node.MissingKind:
			colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
		case k == node.BoolKind:
			colors.Map[able] = color.CyanString
		case k == node.TextKind:
			colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
		case k == node.BinaryKind:
			colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
		case k == node.TimeKind:
			colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
		}
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k node.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k node.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
