package recipe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdoc/definition"
	"github.com/erraggy/oasdoc/document"
	"github.com/erraggy/oasdoc/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Recipe is a decoded recipe file.
type Recipe struct {
	// Seed is the document to start from, relative to the recipe file.
	Seed string
	// InitSequences initializes absent servers, security and tags before the
	// first step runs.
	InitSequences bool
	// Steps run in order.
	Steps []Step

	source string
}

// Step is one helper invocation.
type Step struct {
	Operation definition.Operation
	// Target is the key for keyed helpers and the dotted path for set.other.
	Target string
	Values []document.Value
	Line   int
}

// Load reads and decodes a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: failed to read %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	r.source = path
	return r, nil
}

// Parse decodes a recipe from YAML or JSON. Every step is resolved against
// the helper tables, so unknown helpers and missing arguments are reported
// here rather than when the recipe is applied.
func Parse(data []byte) (*Recipe, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Message: "invalid recipe", Cause: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, &oaserrors.ParseError{Message: "empty recipe"}
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{Line: top.Line, Message: "recipe must be a mapping"}
	}

	r := &Recipe{}
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "seed":
			if err := val.Decode(&r.Seed); err != nil {
				return nil, &oaserrors.ParseError{Line: val.Line, Message: "seed must be a string", Cause: err}
			}
		case "initSequences":
			if err := val.Decode(&r.InitSequences); err != nil {
				return nil, &oaserrors.ParseError{Line: val.Line, Message: "initSequences must be a boolean", Cause: err}
			}
		case "steps":
			if val.Kind != yaml.SequenceNode {
				return nil, &oaserrors.ParseError{Line: val.Line, Message: "steps must be a list"}
			}
			for idx, node := range val.Content {
				step, err := parseStep(node)
				if err != nil {
					se := &StepError{Index: idx, Line: node.Line, Cause: err}
					if step.Operation.Name != "" {
						se.Operation = step.Operation.QualifiedName()
					}
					return nil, se
				}
				r.Steps = append(r.Steps, step)
			}
		default:
			return nil, &oaserrors.ParseError{Line: key.Line, Message: fmt.Sprintf("unknown recipe field %q", key.Value)}
		}
	}
	return r, nil
}

func parseStep(node *yaml.Node) (Step, error) {
	step := Step{Line: node.Line}
	if node.Kind != yaml.MappingNode {
		return step, &oaserrors.ParseError{Line: node.Line, Message: "step must be a mapping"}
	}

	var (
		group           definition.Group
		name, key, path string
		value, values   *yaml.Node
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		switch k.Value {
		case "set", "add":
			if group != "" {
				return step, &oaserrors.ConfigError{Option: k.Value, Message: "a step takes exactly one of set or add"}
			}
			group = definition.Group(k.Value)
			name = v.Value
		case "key":
			key = v.Value
		case "path":
			path = v.Value
		case "value":
			value = v
		case "values":
			values = v
		default:
			return step, &oaserrors.ParseError{Line: k.Line, Message: fmt.Sprintf("unknown step field %q", k.Value)}
		}
	}
	if group == "" {
		return step, &oaserrors.ConfigError{Message: "step needs set or add"}
	}

	op, err := definition.LookupOperation(group, name)
	if err != nil {
		return step, err
	}
	step.Operation = op

	switch op.Mode {
	case definition.ModeKeyed:
		if key == "" {
			return step, &oaserrors.ConfigError{Option: "key", Message: "required by " + op.QualifiedName()}
		}
		step.Target = key
	case definition.ModeSetPath:
		if path == "" {
			return step, &oaserrors.ConfigError{Option: "path", Message: "required by " + op.QualifiedName()}
		}
		step.Target = path
	default:
		if key != "" || path != "" {
			return step, &oaserrors.ConfigError{Option: "key", Message: op.QualifiedName() + " takes no key or path"}
		}
	}

	switch {
	case value != nil && values != nil:
		return step, &oaserrors.ConfigError{Option: "values", Message: "use value or values, not both"}
	case value != nil:
		v, err := document.FromNode(value)
		if err != nil {
			return step, err
		}
		step.Values = []document.Value{v}
	case values != nil:
		if op.Mode != definition.ModeAppend {
			return step, &oaserrors.ConfigError{Option: "values", Message: op.QualifiedName() + " takes a single value"}
		}
		if values.Kind != yaml.SequenceNode {
			return step, &oaserrors.ParseError{Line: values.Line, Message: "values must be a list"}
		}
		for _, item := range values.Content {
			v, err := document.FromNode(item)
			if err != nil {
				return step, err
			}
			step.Values = append(step.Values, v)
		}
	default:
		return step, &oaserrors.ConfigError{Option: "value", Message: "required by " + op.QualifiedName()}
	}
	return step, nil
}

// LoadSeed reads the seed document. Relative seed paths resolve against the
// recipe file's directory. It returns nil when the recipe has no seed.
func (r *Recipe) LoadSeed() (*document.Document, error) {
	if r.Seed == "" {
		return nil, nil
	}
	path := r.Seed
	if !filepath.IsAbs(path) && r.source != "" {
		path = filepath.Join(filepath.Dir(r.source), path)
	}
	return LoadDocument(path)
}

// LoadDocument reads a JSON or YAML document from disk.
func LoadDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: failed to read %s: %w", path, err)
	}
	doc, err := document.Parse(data)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Apply runs every step through b in order and stops at the first failure.
func (r *Recipe) Apply(b *definition.Builder) error {
	for i, step := range r.Steps {
		if _, err := b.Do(step.Operation, step.Target, step.Values...); err != nil {
			return &StepError{Index: i, Line: step.Line, Operation: step.Operation.QualifiedName(), Cause: err}
		}
	}
	return nil
}

// Builder creates a definition.Builder from the recipe's seed and
// initSequences settings, applies every step and returns it. A non-nil seed
// replaces the recipe's own seed, which is then never read. Options in opts
// are applied after the recipe's own.
func (r *Recipe) Builder(seed *document.Document, opts ...definition.BuilderOption) (*definition.Builder, error) {
	if seed == nil {
		var err error
		if seed, err = r.LoadSeed(); err != nil {
			return nil, err
		}
	}
	all := make([]definition.BuilderOption, 0, len(opts)+2)
	if seed != nil {
		all = append(all, definition.WithDocument(seed))
	}
	if r.InitSequences {
		all = append(all, definition.WithInitSequences(true))
	}
	all = append(all, opts...)

	b := definition.New(all...)
	if err := r.Apply(b); err != nil {
		return b, err
	}
	return b, nil
}
