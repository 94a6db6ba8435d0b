package gui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func labelTexts(obj fyne.CanvasObject) []string {
	var texts []string
	if c, ok := obj.(*fyne.Container); ok {
		for _, o := range c.Objects {
			if l, ok := o.(*widget.Label); ok {
				texts = append(texts, l.Text)
			}
		}
	}
	return texts
}

func TestCreateBottomBar(t *testing.T) {
	test.NewTempApp(t)

	bar := CreateBottomBar("https://pokeapi.co/api/v2", "1.0.0")
	assert.Equal(t, []string{"API:", "pokeapi.co", "v1.0.0"}, labelTexts(bar))

	bar = CreateBottomBar("not a url", "2.0")
	assert.Equal(t, []string{"API:", "not a url", "v2.0"}, labelTexts(bar))
}
