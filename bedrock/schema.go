package bedrock

import (
	"github.com/invopop/jsonschema"
)

type schemaFile struct {
	FormatVersion     string                             `json:"format_version,omitempty" jsonschema:"title=Format version"`
	RenderControllers map[string]*schemaRenderController `json:"render_controllers,omitempty" jsonschema:"title=Render controllers,description=Keys starting with controller.render are parsed. Other keys are ignored."`
}

type schemaRenderController struct {
	Textures             []string                 `json:"textures,omitempty" jsonschema:"description=Texture expressions in layer order"`
	Geometry             string                   `json:"geometry,omitempty" jsonschema:"description=Geometry expression"`
	Materials            []map[string]string      `json:"materials,omitempty" jsonschema:"description=Bone pattern to material expression. Later entries win."`
	PartVisibility       []map[string]interface{} `json:"part_visibility,omitempty" jsonschema:"description=Bone name to visibility expression in evaluation order"`
	IgnoreLighting       bool                     `json:"ignore_lighting,omitempty"`
	LightColorMultiplier float32                  `json:"light_color_multiplier,omitempty" jsonschema:"default=1"`
	Arrays               *schemaArrays            `json:"arrays,omitempty" jsonschema:"description=Named expression lists for indexed lookup"`
}

type schemaArrays struct {
	Textures   map[string][]string `json:"textures,omitempty"`
	Geometries map[string][]string `json:"geometries,omitempty"`
	Materials  map[string][]string `json:"materials,omitempty"`
}

// Schema describes the render controller file format accepted by Parser.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(schemaFile))
	schema.Title = "Bedrock render controllers"
	schema.Description = "Render controller definitions from a resource pack render_controllers/*.json file"
	return schema
}
