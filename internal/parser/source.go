package parser

// SourceKey is the keyword of an include directive.
const SourceKey = "source"

// Directive is a `source = path` line.
type Directive struct {
	Line int
	Path string
}

// SourceDirectives lists the include directives in lines, in order.
func SourceDirectives(lines []string) []Directive {
	var out []Directive
	for i, raw := range lines {
		l := ClassifyLine(raw)
		if l.Kind == KindEntry && l.Key == SourceKey && l.Value != "" {
			out = append(out, Directive{Line: i, Path: l.Value})
		}
	}
	return out
}
