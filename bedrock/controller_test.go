package bedrock

import (
	"encoding/json"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v2"
)

func TestFindArray(t *testing.T) {
	c := &RenderController{
		TextureArrays:  []*SelectorArray{{Name: "Array.skins", Expressions: []string{"Texture.a"}}},
		GeometryArrays: []*SelectorArray{{Name: "array.geos"}},
		MaterialArrays: []*SelectorArray{{Name: "mats"}},
	}
	for _, name := range []string{"Array.skins", "array.skins", "skins", "ARRAY.SKINS"} {
		if c.TextureArray(name) != c.TextureArrays[0] {
			t.Error("TextureArray", name)
		}
	}
	if c.GeometryArray("Array.geos") == nil {
		t.Error("GeometryArray")
	}
	if c.MaterialArray("array.mats") == nil {
		t.Error("MaterialArray")
	}
	if c.TextureArray("Array.eyes") != nil {
		t.Error("unknown array should be nil")
	}
}

func TestControllersFind(t *testing.T) {
	cs := Controllers{{ID: "controller.render.a"}, {ID: "controller.render.b"}}
	if c := cs.Find("controller.render.b"); c == nil || c != cs[1] {
		t.Error("Find", c)
	}
	if cs.Find("controller.render.c") != nil {
		t.Error("Find should return nil")
	}
}

func TestPartVisibilityMarshal(t *testing.T) {
	pv := NewPartVisibility()
	pv.set("z", "true")
	pv.set("a", "false")
	pv.set("z", "query.is_baby")

	data, err := json.Marshal(pv)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"z":"query.is_baby","a":"false"}` {
		t.Error("json", string(data))
	}

	out, err := yaml.Marshal(pv)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "z: query.is_baby\na: \"false\"\n" {
		t.Errorf("yaml %q", string(out))
	}
}

func TestPartVisibilityNil(t *testing.T) {
	var pv *PartVisibility
	if pv.Len() != 0 || pv.Bones() != nil {
		t.Error("nil PartVisibility should be empty")
	}
	if _, ok := pv.Get("head"); ok {
		t.Error("Get on nil")
	}
}

func TestRenderControllerYAML(t *testing.T) {
	list, err := ParseString(`{"render_controllers":{"controller.render.y":{
		"geometry":"Geometry.default",
		"part_visibility":[{"head":"true"},{"body":"true"}]
	}}}`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := yaml.Marshal(list)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, "id: controller.render.y") || !strings.Contains(s, "geometry: Geometry.default") {
		t.Error(s)
	}
	if strings.Index(s, "head:") > strings.Index(s, "body:") {
		t.Error("part visibility order lost", s)
	}
}
