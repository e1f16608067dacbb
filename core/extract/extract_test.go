package extract

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtract_StrictJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v Value)
	}{
		{
			name:  "flat object",
			input: `{"name":"John","age":30}`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindMapping {
					t.Fatalf("Kind() = %v, want mapping", v.Kind())
				}
				entries := v.Entries()
				if len(entries) != 2 {
					t.Fatalf("len(entries) = %d, want 2", len(entries))
				}
				if entries[0].Key != "name" || entries[0].Value.Text() != "John" {
					t.Errorf("first entry = %s=%v", entries[0].Key, entries[0].Value)
				}
				if entries[1].Key != "age" || entries[1].Value.Number() != 30 {
					t.Errorf("second entry = %s=%v", entries[1].Key, entries[1].Value)
				}
			},
		},
		{
			name:  "nested object",
			input: `{"plan":{"steps":["a","b"],"duration":5}}`,
			check: func(t *testing.T, v Value) {
				plan := v.Entries()[0].Value
				if plan.Kind() != KindMapping {
					t.Fatalf("plan kind = %v, want mapping", plan.Kind())
				}
				steps := plan.Entries()[0].Value
				if steps.Kind() != KindSequence || steps.Len() != 2 {
					t.Errorf("steps = %v, want sequence of 2", steps)
				}
			},
		},
		{
			name:  "top-level array",
			input: `["not","a","mapping"]`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindSequence || v.Len() != 3 {
					t.Errorf("got %v, want sequence of 3", v)
				}
			},
		},
		{
			name:  "scalar",
			input: `42`,
			check: func(t *testing.T, v Value) {
				if v.Kind() != KindNumber || v.Number() != 42 {
					t.Errorf("got %v, want number 42", v)
				}
			},
		},
		{
			name:  "null and empty string members",
			input: `{"a":null,"b":"","c":false}`,
			check: func(t *testing.T, v Value) {
				entries := v.Entries()
				if !entries[0].Value.IsEmptyScalar() {
					t.Errorf("null should be an empty scalar")
				}
				if !entries[1].Value.IsEmptyScalar() {
					t.Errorf("empty string should be an empty scalar")
				}
				if entries[2].Value.IsEmptyScalar() {
					t.Errorf("false is not an empty scalar")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Extract(tt.input)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			tt.check(t, v)
		})
	}
}

func TestExtract_ProseWrapped(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string // compact JSON of the recovered value
	}{
		{
			name:  "leading prose",
			input: `Sure! Here is your JSON: {"done":true}`,
			want:  `{"done":true}`,
		},
		{
			name:  "leading and trailing prose",
			input: `Sure! {"a":1} Hope that helps.`,
			want:  `{"a":1}`,
		},
		{
			name:  "nested object wrapped in prose",
			input: "Here you go:\n{\"plan\":{\"duration\":5}}\nEnjoy.",
			want:  `{"plan":{"duration":5}}`,
		},
		{
			name:  "markdown fence",
			input: "```json\n{\"key\":\"value\"}\n```",
			want:  `{"key":"value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Extract(tt.input)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			got, err := v.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Extract() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExtract_NotJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "blank string", input: "   \n\t"},
		{name: "plain prose", input: "not json at all"},
		{name: "unbalanced braces", input: "some text { with a stray brace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.input)
			if !errors.Is(err, ErrNotJSON) {
				t.Errorf("Extract(%q) error = %v, want ErrNotJSON", tt.input, err)
			}
		})
	}
}

// The heuristic only attempts the first matched span; a second independent
// object is never recovered on its own. For this input the greedy span runs
// from the first "{" to the last "}", which is not valid JSON, and with the
// repair stage off the whole extraction fails rather than falling back to
// the later object.
func TestExtract_FirstSpanOnly(t *testing.T) {
	input := `first: {"a":1} second: {"b":2}`
	v, err := Extract(input)
	if err == nil {
		got, _ := v.MarshalJSON()
		if string(got) == `{"b":2}` {
			t.Fatalf("Extract() recovered the second object, want first-span-only semantics")
		}
		return
	}
	if !errors.Is(err, ErrNotJSON) {
		t.Errorf("Extract() error = %v, want ErrNotJSON", err)
	}
}

func TestExtract_WithRepair(t *testing.T) {
	// Single-quoted keys are invalid JSON; only the repair stage recovers it.
	input := `{'name': 'John', 'age': 30}`

	if _, err := Extract(input); !errors.Is(err, ErrNotJSON) {
		t.Fatalf("Extract() without repair = %v, want ErrNotJSON", err)
	}

	v, err := Extract(input, WithRepair())
	if err != nil {
		t.Fatalf("Extract(WithRepair) error = %v", err)
	}
	entries := v.Entries()
	if len(entries) != 2 || entries[0].Value.Text() != "John" {
		t.Errorf("Extract(WithRepair) = %v", v)
	}
}

func TestExtract_RoundTripIdentity(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,null,"x"],"c":{"d":2.5}}`,
		`{"z":"last","a":"first"}`,
		`[1,2,3]`,
		`"just a string"`,
	}
	for _, input := range inputs {
		v, err := Extract(input)
		if err != nil {
			t.Fatalf("Extract(%q) error = %v", input, err)
		}
		got, err := v.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON() error = %v", err)
		}
		if string(got) != input {
			t.Errorf("round trip of %q = %s", input, got)
		}
	}
}

func TestExtract_KeyOrderPreserved(t *testing.T) {
	input := `{"zulu":1,"alpha":2,"mike":3}`
	v, err := Extract(input)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	want := []string{"zulu", "alpha", "mike"}
	entries := v.Entries()
	for i, e := range entries {
		if e.Key != want[i] {
			t.Errorf("entries[%d].Key = %q, want %q", i, e.Key, want[i])
		}
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var wrapper struct {
		Response Value `json:"response"`
	}
	input := `{"response":{"zulu":1,"alpha":"","mike":[true,null]}}`

	if err := json.Unmarshal([]byte(input), &wrapper); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	entries := wrapper.Response.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	want := []string{"zulu", "alpha", "mike"}
	for i, e := range entries {
		if e.Key != want[i] {
			t.Errorf("entries[%d].Key = %q, want %q", i, e.Key, want[i])
		}
	}

	got, err := json.Marshal(wrapper)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(got) != input {
		t.Errorf("marshal round trip = %s, want %s", got, input)
	}
}

func TestParseAs(t *testing.T) {
	type person struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	t.Run("valid JSON", func(t *testing.T) {
		got, err := ParseAs[person](`{"name":"John","age":30}`)
		if err != nil {
			t.Fatalf("ParseAs() error = %v", err)
		}
		if got.Name != "John" || got.Age != 30 {
			t.Errorf("ParseAs() = %+v", got)
		}
	})

	t.Run("repairable JSON", func(t *testing.T) {
		got, err := ParseAs[person](`{name: 'John', age: 30}`)
		if err != nil {
			t.Fatalf("ParseAs() error = %v", err)
		}
		if got.Name != "John" || got.Age != 30 {
			t.Errorf("ParseAs() = %+v", got)
		}
	})

	t.Run("hopeless input", func(t *testing.T) {
		if _, err := ParseAs[person](string([]byte{0xff, 0xfe})); err == nil {
			t.Errorf("ParseAs() error = nil, want error")
		}
	})
}
