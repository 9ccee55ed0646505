package bedrock

const (
	arraysTextures   = "textures"
	arraysGeometries = "geometries"
	arraysMaterials  = "materials"
)

// parseSelectorArrays reads one category of the "arrays" section.
// Array names are not validated; any key becomes a SelectorArray.
func parseSelectorArrays(arrays *object, category string) ([]*SelectorArray, error) {
	raw, ok := arrays.get(category)
	if !ok {
		return []*SelectorArray{}, nil
	}
	section, err := decodeObject(raw, arrays.child(category))
	if err != nil {
		return nil, err
	}
	result := make([]*SelectorArray, 0, len(section.keys))
	for _, name := range section.keys {
		exprs, err := decodeStringList(section.values[name], section.child(name))
		if err != nil {
			return nil, err
		}
		result = append(result, &SelectorArray{Name: name, Expressions: exprs})
	}
	return result, nil
}
