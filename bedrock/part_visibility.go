package bedrock

import (
	"github.com/iancoleman/orderedmap"
	yaml "gopkg.in/yaml.v2"
)

// PartVisibility maps bone names to visibility expressions in first-insertion order.
type PartVisibility struct {
	m *orderedmap.OrderedMap
}

func NewPartVisibility() *PartVisibility {
	return &PartVisibility{m: orderedmap.New()}
}

// set replaces the expression of a known bone without moving it.
func (p *PartVisibility) set(bone, expr string) {
	p.m.Set(bone, expr)
}

func (p *PartVisibility) Get(bone string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p.m.Get(bone)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (p *PartVisibility) Bones() []string {
	if p == nil {
		return nil
	}
	keys := p.m.Keys()
	bones := make([]string, len(keys))
	copy(bones, keys)
	return bones
}

func (p *PartVisibility) Len() int {
	if p == nil {
		return 0
	}
	return len(p.m.Keys())
}

func (p *PartVisibility) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return p.m.MarshalJSON()
}

func (p *PartVisibility) MarshalYAML() (interface{}, error) {
	items := yaml.MapSlice{}
	for _, bone := range p.Bones() {
		expr, _ := p.Get(bone)
		items = append(items, yaml.MapItem{Key: bone, Value: expr})
	}
	return items, nil
}
