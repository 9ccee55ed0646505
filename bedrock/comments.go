package bedrock

import "bytes"

// stripComments removes // and /* */ comments found outside string literals.
func stripComments(data []byte) []byte {
	if bytes.IndexByte(data, '/') < 0 {
		return data
	}
	out := make([]byte, 0, len(data))
	inString := false
	for i := 0; i < len(data); i++ {
		c := data[i]
		if inString {
			out = append(out, c)
			if c == '\\' && i+1 < len(data) {
				i++
				out = append(out, data[i])
			} else if c == '"' {
				inString = false
			}
			continue
		}
		if c == '/' && i+1 < len(data) {
			if data[i+1] == '/' {
				for i < len(data) && data[i] != '\n' {
					i++
				}
				if i < len(data) {
					out = append(out, '\n')
				}
				continue
			}
			if data[i+1] == '*' {
				end := bytes.Index(data[i+2:], []byte("*/"))
				if end < 0 {
					return out
				}
				i += end + 3
				out = append(out, ' ')
				continue
			}
		}
		if c == '"' {
			inString = true
		}
		out = append(out, c)
	}
	return out
}
