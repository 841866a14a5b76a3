package blocksyaml

import (
	"fmt"

	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"

	"gopkg.in/yaml.v3"
)

// Document is the Go-level representation of a parsed palette/program file.
//
// Both sections are optional:
//   - palette: custom block templates; when absent the default palette is used.
//   - program: blocks to place, in order, with their slot values.
type Document struct {
	Palette []blocks.BlockTemplate
	Program []Step
}

// Step is one placed block of a program and the values for its slots.
// Pins and Values are indexed by slot in order of appearance.
// Wait is nil when the file does not set it.
type Step struct {
	Block  string
	Pins   []string
	Values []string
	Wait   *string
}

// ---- Internal YAML parsing structs ----------------------------------------

type yamlDocument struct {
	Palette []yamlTemplate `yaml:"palette,omitempty"`
	Program []yamlStep     `yaml:"program,omitempty"`
}

type yamlTemplate struct {
	ID      string `yaml:"id"`
	Content string `yaml:"content"`
}

// yamlStep keeps slot values as yaml.Node so that numbers (pins: [16]) and
// strings (pins: ["16"]) decode to the same text.
type yamlStep struct {
	Block  string    `yaml:"block"`
	Pins   yaml.Node `yaml:"pins,omitempty"`
	Values yaml.Node `yaml:"values,omitempty"`
	Wait   yaml.Node `yaml:"wait,omitempty"`
}

// ---- Parse -----------------------------------------------------------------

// Parse parses a YAML document. A bare sequence is read as a program only.
func Parse(in []byte) (Document, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(in, &docNode); err != nil {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: %w", err)
	}
	if len(docNode.Content) == 0 {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: empty YAML")
	}
	root := docNode.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		var steps []yamlStep
		if err := root.Decode(&steps); err != nil {
			return Document{}, fmt.Errorf("phase=parse path=program: %w", err)
		}
		program, err := convertSteps(steps)
		if err != nil {
			return Document{}, err
		}
		return Document{Program: program}, nil

	case yaml.MappingNode:
		var yd yamlDocument
		if err := root.Decode(&yd); err != nil {
			return Document{}, fmt.Errorf("phase=parse path=<doc>: %w", err)
		}
		return convertDocument(yd)

	default:
		return Document{}, fmt.Errorf("phase=parse path=<doc>: unexpected YAML root kind: %d", root.Kind)
	}
}

func convertDocument(yd yamlDocument) (Document, error) {
	var doc Document
	for i, yt := range yd.Palette {
		if yt.ID == "" || yt.Content == "" {
			return Document{}, fmt.Errorf("phase=parse path=palette[%d]: id and content are required", i)
		}
		doc.Palette = append(doc.Palette, blocks.NewTemplate(yt.ID, yt.Content))
	}
	program, err := convertSteps(yd.Program)
	if err != nil {
		return Document{}, err
	}
	doc.Program = program
	return doc, nil
}

func convertSteps(raw []yamlStep) ([]Step, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]Step, len(raw))
	for i, ys := range raw {
		path := fmt.Sprintf("program[%d]", i)
		if ys.Block == "" {
			return nil, fmt.Errorf("phase=parse path=%s: missing 'block'", path)
		}
		pins, err := decodeScalars(&ys.Pins)
		if err != nil {
			return nil, fmt.Errorf("phase=parse path=%s.pins: %w", path, err)
		}
		values, err := decodeScalars(&ys.Values)
		if err != nil {
			return nil, fmt.Errorf("phase=parse path=%s.values: %w", path, err)
		}
		step := Step{Block: ys.Block, Pins: pins, Values: values}
		// yaml.Node.Kind == 0 means the key was absent.
		if ys.Wait.Kind != 0 {
			if ys.Wait.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("phase=parse path=%s.wait: expected a scalar", path)
			}
			w := ys.Wait.Value
			step.Wait = &w
		}
		out[i] = step
	}
	return out, nil
}

// decodeScalars reads a YAML sequence of scalars as strings.
// yaml.v3 keeps every scalar's text in node.Value, so 16 arrives as "16".
func decodeScalars(node *yaml.Node) ([]string, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a sequence, got YAML kind %d", node.Kind)
	}
	out := make([]string, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("item %d: expected a scalar, got YAML kind %d", i, item.Kind)
		}
		out = append(out, item.Value)
	}
	return out, nil
}

// ---- Build -----------------------------------------------------------------

// NewPaletteFromDocuments merges the palette sections of all documents.
// Returns the default palette when none of them declares templates.
func NewPaletteFromDocuments(docs ...Document) (*blocks.Palette, error) {
	var templates []blocks.BlockTemplate
	for _, doc := range docs {
		templates = append(templates, doc.Palette...)
	}
	if len(templates) == 0 {
		return blocks.DefaultPalette(), nil
	}
	p := blocks.NewPalette()
	for _, t := range templates {
		if err := p.Register(t); err != nil {
			return nil, fmt.Errorf("phase=build path=palette: %w", err)
		}
	}
	return p, nil
}

// Build parses a single document and returns an engine with its program placed.
func Build(in []byte) (*blocks.Engine, error) {
	doc, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return BuildFromDocuments(doc)
}

// BuildMany parses several documents; palettes are merged and programs are
// concatenated in order.
func BuildMany(inputs ...[]byte) (*blocks.Engine, error) {
	docs := make([]Document, 0, len(inputs))
	for _, in := range inputs {
		doc, err := Parse(in)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return BuildFromDocuments(docs...)
}

// BuildFromDocuments builds an engine from already-parsed documents.
func BuildFromDocuments(docs ...Document) (*blocks.Engine, error) {
	palette, err := NewPaletteFromDocuments(docs...)
	if err != nil {
		return nil, err
	}
	eng := blocks.NewEngine(palette)
	i := 0
	for _, doc := range docs {
		for _, step := range doc.Program {
			if err := Apply(eng, step); err != nil {
				return nil, fmt.Errorf("phase=build path=program[%d]: %w", i, err)
			}
			i++
		}
	}
	return eng, nil
}

// Apply places one step at the end of the workspace and records its values.
func Apply(eng *blocks.Engine, step Step) error {
	b, err := eng.Place(step.Block)
	if err != nil {
		return err
	}
	for slot, v := range step.Pins {
		eng.SetPinValue(b.InstanceID, slot, v)
	}
	for slot, v := range step.Values {
		eng.SetGenericValue(b.InstanceID, slot, v)
	}
	if step.Wait != nil {
		eng.SetWaitValue(b.InstanceID, *step.Wait)
	}
	return nil
}
