package nls

// Erase replaces every marker token inside ranges with spaces. The
// result has exactly the same length as content, so offsets computed
// against the input stay valid for the output. Markers outside the
// active ranges are left untouched.
func Erase(content string, ranges *RangeSet) string {
	locs := markerRe.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return content
	}
	buf := []byte(content)
	for _, loc := range locs {
		if !ranges.Encloses(loc[0], loc[1]) {
			continue
		}
		for i := loc[0]; i < loc[1]; i++ {
			buf[i] = ' '
		}
	}
	return string(buf)
}
