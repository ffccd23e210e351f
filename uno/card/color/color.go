package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(text string, args ...interface{}) string {
	return c.colorFunction(text, args...)
}

func (c *colorStruct) String() string {
	return c.name
}

var Red = &colorStruct{
	name:          "Red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "Green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "Blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "Yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All lists the colors in deck construction order.
var All = []Color{Red, Green, Blue, Yellow}

var colors = map[string]Color{
	strings.ToLower(Red.name):    Red,
	strings.ToLower(Green.name):  Green,
	strings.ToLower(Blue.name):   Blue,
	strings.ToLower(Yellow.name): Yellow,
}

// ByName looks a color up by its name, ignoring case.
func ByName(name string) (Color, error) {
	color := colors[strings.ToLower(strings.TrimSpace(name))]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// SetPainting toggles ANSI escapes for every color.
func SetPainting(enabled bool) {
	color.NoColor = !enabled
}

func Painting() bool {
	return !color.NoColor
}
