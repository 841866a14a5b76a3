package server

import (
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/blocks"
	"github.com/CullinNaylor9/inspire-course-bot-sub000/cmd/inspirebot/simulator"
)

type templateView struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	Category     string `json:"category"`
	Wait         bool   `json:"wait"`
	PinSlots     int    `json:"pinSlots"`
	GenericSlots int    `json:"genericSlots"`
}

type paletteView struct {
	Templates      []templateView `json:"templates"`
	PinLabels      []string       `json:"pinLabels"`
	GenericChoices []string       `json:"genericChoices"`
}

type blockView struct {
	InstanceID string `json:"instanceId"`
	TemplateID string `json:"templateId"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	HasInput   bool   `json:"hasInput"`
	HasPin     bool   `json:"hasPin"`
	Wait       bool   `json:"wait"`
	Line       string `json:"line"`
}

type workspaceView struct {
	Blocks []blockView `json:"blocks"`
}

type frameView struct {
	Line    string  `json:"line"`
	X       float64 `json:"x"`
	Z       float64 `json:"z"`
	Heading float64 `json:"heading"`
}

type runView struct {
	Code   string      `json:"code"`
	Frames []frameView `json:"frames"`
}

func toTemplateView(t blocks.BlockTemplate) templateView {
	pins, generic := t.Slots()
	return templateView{
		ID:           t.ID,
		Content:      t.Content,
		Category:     string(t.Category),
		Wait:         t.IsWait(),
		PinSlots:     pins,
		GenericSlots: generic,
	}
}

func toPaletteView(p *blocks.Palette) paletteView {
	out := paletteView{
		Templates:      make([]templateView, 0, p.Len()),
		PinLabels:      blocks.PinLabels(),
		GenericChoices: blocks.GenericChoices(),
	}
	for _, t := range p.Templates() {
		out.Templates = append(out.Templates, toTemplateView(t))
	}
	return out
}

func toBlockView(b *blocks.WorkspaceBlock, in *blocks.Inputs) blockView {
	return blockView{
		InstanceID: b.InstanceID,
		TemplateID: b.Template.ID,
		Content:    b.Content(),
		Category:   string(b.Template.Category),
		HasInput:   b.HasInput,
		HasPin:     b.HasPin,
		Wait:       b.IsWait(),
		Line:       blocks.RenderBlock(b, in),
	}
}

func toWorkspaceView(eng *blocks.Engine) workspaceView {
	bs := eng.Blocks()
	out := workspaceView{Blocks: make([]blockView, 0, len(bs))}
	for _, b := range bs {
		out.Blocks = append(out.Blocks, toBlockView(b, eng.Inputs()))
	}
	return out
}

func toRunView(code string, frames []simulator.Frame) runView {
	out := runView{Code: code, Frames: make([]frameView, 0, len(frames))}
	for _, f := range frames {
		out.Frames = append(out.Frames, frameView{
			Line:    f.Line,
			X:       f.Pose.X,
			Z:       f.Pose.Z,
			Heading: f.Pose.Heading,
		})
	}
	return out
}
