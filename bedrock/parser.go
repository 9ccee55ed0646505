package bedrock

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Parser extracts render controllers from Bedrock resource pack JSON.
// The zero value uses DefaultPrefix and discards log output.
type Parser struct {
	Prefix string
	Logger *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	return &Parser{Prefix: DefaultPrefix, Logger: logger}
}

var defaultParser = &Parser{}

func Parse(data []byte) (Controllers, error) {
	return defaultParser.Parse(data)
}

func ParseString(s string) (Controllers, error) {
	return defaultParser.Parse([]byte(s))
}

func ParseReader(r io.Reader) (Controllers, error) {
	return defaultParser.ParseReader(r)
}

func ParseFile(path string) (*File, error) {
	return defaultParser.ParseFile(path)
}

func (p *Parser) Parse(data []byte) (Controllers, error) {
	doc, err := p.decode(data)
	if err != nil {
		return nil, err
	}
	return doc.build(), nil
}

func (p *Parser) ParseReader(r io.Reader) (Controllers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.Parse(data)
}

func (p *Parser) ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := p.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Path: path, FormatVersion: doc.formatVersion, Controllers: doc.build()}, nil
}

func (p *Parser) prefix() string {
	if p.Prefix == "" {
		return DefaultPrefix
	}
	return p.Prefix
}

func (p *Parser) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// document is the validated form of a render controller file.
type document struct {
	formatVersion string
	controllers   []*controllerNode
}

type controllerNode struct {
	id                   string
	textures             []string
	geometry             string
	materials            map[string]string
	partVisibility       *PartVisibility
	ignoreLighting       bool
	lightColorMultiplier float32
	arrays               *arraysNode // nil when the entry has no "arrays"
}

type arraysNode struct {
	textures   []*SelectorArray
	geometries []*SelectorArray
	materials  []*SelectorArray
}

func (p *Parser) decode(data []byte) (*document, error) {
	data = bytes.TrimSpace(stripComments(data))
	var root json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("bedrock: %w", err)
	}
	top, err := decodeObject(root, "")
	if err != nil {
		return nil, err
	}

	doc := &document{formatVersion: stringField(top, "format_version", "")}
	raw, ok := top.get("render_controllers")
	if !ok {
		return doc, nil
	}
	entries, err := decodeObject(raw, "render_controllers")
	if err != nil {
		return nil, err
	}

	log := p.logger()
	prefix := p.prefix()
	for _, id := range entries.keys {
		value := entries.values[id]
		if kindOf(value) != kindObject {
			log.Debug("skip render controller", zap.String("id", id), zap.String("kind", kindOf(value)))
			continue
		}
		if !strings.HasPrefix(id, prefix) {
			log.Debug("skip render controller", zap.String("id", id), zap.String("prefix", prefix))
			continue
		}
		entry, err := decodeObject(value, "render_controllers["+strconv.Quote(id)+"]")
		if err != nil {
			return nil, err
		}
		node, err := decodeController(id, entry)
		if err != nil {
			return nil, err
		}
		log.Debug("render controller",
			zap.String("id", id),
			zap.Int("textures", len(node.textures)),
			zap.Int("materials", len(node.materials)),
			zap.Bool("arrays", node.arrays != nil))
		doc.controllers = append(doc.controllers, node)
	}
	return doc, nil
}

func decodeController(id string, o *object) (*controllerNode, error) {
	var err error
	n := &controllerNode{id: id}

	if n.textures, err = stringList(o, "textures"); err != nil {
		return nil, err
	}
	n.geometry = stringField(o, "geometry", "")
	if n.materials, err = mergedMap(o, "materials"); err != nil {
		return nil, err
	}
	if n.partVisibility, err = orderedMap(o, "part_visibility"); err != nil {
		return nil, err
	}
	if n.ignoreLighting, err = boolField(o, "ignore_lighting", false); err != nil {
		return nil, err
	}
	if n.lightColorMultiplier, err = floatField(o, "light_color_multiplier", 1.0); err != nil {
		return nil, err
	}

	raw, ok := o.get("arrays")
	if !ok {
		return n, nil
	}
	arrays, err := decodeObject(raw, o.child("arrays"))
	if err != nil {
		return nil, err
	}
	n.arrays = &arraysNode{}
	if n.arrays.textures, err = parseSelectorArrays(arrays, arraysTextures); err != nil {
		return nil, err
	}
	if n.arrays.geometries, err = parseSelectorArrays(arrays, arraysGeometries); err != nil {
		return nil, err
	}
	if n.arrays.materials, err = parseSelectorArrays(arrays, arraysMaterials); err != nil {
		return nil, err
	}
	return n, nil
}

func (doc *document) build() Controllers {
	list := Controllers{}
	for _, n := range doc.controllers {
		list = append(list, n.build())
	}
	return list
}

func (n *controllerNode) build() *RenderController {
	c := &RenderController{
		ID:                   n.id,
		Geometry:             n.geometry,
		Textures:             n.textures,
		Materials:            n.materials,
		PartVisibility:       n.partVisibility,
		IgnoreLighting:       n.ignoreLighting,
		LightColorMultiplier: n.lightColorMultiplier,
	}
	if n.arrays == nil {
		c.TextureArrays = []*SelectorArray{}
		c.GeometryArrays = []*SelectorArray{}
		c.MaterialArrays = []*SelectorArray{}
		return c
	}
	c.TextureArrays = n.arrays.textures
	c.GeometryArrays = n.arrays.geometries
	c.MaterialArrays = n.arrays.materials
	return c
}
