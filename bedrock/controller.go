package bedrock

// https://learn.microsoft.com/en-us/minecraft/creator/reference/content/entityreference/examples/rendercontrollers

import (
	"strings"
)

const DefaultPrefix = "controller.render"

type SelectorArray struct {
	Name        string   `json:"name" yaml:"name"`
	Expressions []string `json:"expressions" yaml:"expressions"`
}

type RenderController struct {
	ID string `json:"id" yaml:"id"`

	Geometry  string            `json:"geometry" yaml:"geometry"`
	Textures  []string          `json:"textures" yaml:"textures"`
	Materials map[string]string `json:"materials" yaml:"materials"`

	PartVisibility       *PartVisibility `json:"partVisibility" yaml:"partVisibility"`
	IgnoreLighting       bool            `json:"ignoreLighting" yaml:"ignoreLighting"`
	LightColorMultiplier float32         `json:"lightColorMultiplier" yaml:"lightColorMultiplier"`

	TextureArrays  []*SelectorArray `json:"textureArrays" yaml:"textureArrays"`
	GeometryArrays []*SelectorArray `json:"geometryArrays" yaml:"geometryArrays"`
	MaterialArrays []*SelectorArray `json:"materialArrays" yaml:"materialArrays"`
}

// TextureArray finds an array by the name expressions use, e.g. "Array.skins".
func (c *RenderController) TextureArray(name string) *SelectorArray {
	return findArray(c.TextureArrays, name)
}

func (c *RenderController) GeometryArray(name string) *SelectorArray {
	return findArray(c.GeometryArrays, name)
}

func (c *RenderController) MaterialArray(name string) *SelectorArray {
	return findArray(c.MaterialArrays, name)
}

func findArray(arrays []*SelectorArray, name string) *SelectorArray {
	name = trimArrayPrefix(name)
	for _, a := range arrays {
		if strings.EqualFold(trimArrayPrefix(a.Name), name) {
			return a
		}
	}
	return nil
}

func trimArrayPrefix(name string) string {
	if len(name) > 6 && strings.EqualFold(name[:6], "array.") {
		return name[6:]
	}
	return name
}

type Controllers []*RenderController

func (cs Controllers) Find(id string) *RenderController {
	for _, c := range cs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// File is a parsed render controller file.
type File struct {
	Path          string      `json:"path,omitempty" yaml:"path,omitempty"`
	FormatVersion string      `json:"formatVersion" yaml:"formatVersion"`
	Controllers   Controllers `json:"renderControllers" yaml:"renderControllers"`
}
