package dsl

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Format
	}{
		{"Empty", "", FormatUnknown},
		{"Whitespace", "   \n\t", FormatUnknown},
		{"StructuredEnvelope", `{"formatVersion": 2, "nodes": [], "groups": [], "edges": []}`, FormatStructured},
		{"StructuredCollectionOnly", `{"nodes": [{"id": "a", "baseName": "EC2"}]}`, FormatStructured},
		{"BareJSONObject", `{}`, FormatUnknown},
		{"UnrelatedJSON", `{"foo": "bar"}`, FormatUnknown},
		{"DirectionDirective", "direction right\nA > B", FormatDSL},
		{"LabelIconPattern", `A [label: "Web", icon: aws-ec2]`, FormatDSL},
		{"BraceWithIcon", "g [icon: custom] {\n}", FormatDSL},
		{"KnownIconPrefix", "something icon: aws-ec2 something", FormatDSL},
		{"PlainProse", "just some pasted text", FormatUnknown},
		{"BracesWithoutIcons", "func main() {\n}\n", FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
