package editor

import "fmt"

// Tool is the active editing mode. Exactly one is active at a time;
// ToolPick is momentary and reverts to ToolPaint after use.
type Tool int

const (
	ToolPaint Tool = iota
	ToolErase
	ToolPick
	ToolFill
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolErase:
		return "erase"
	case ToolPick:
		return "pick"
	case ToolFill:
		return "fill"
	default:
		return "unknown"
	}
}

// ParseTool maps a tool name to its Tool value.
func ParseTool(name string) (Tool, error) {
	switch name {
	case "paint":
		return ToolPaint, nil
	case "erase":
		return ToolErase, nil
	case "pick":
		return ToolPick, nil
	case "fill":
		return ToolFill, nil
	}
	return ToolPaint, fmt.Errorf("unknown tool %q", name)
}

// Tools lists every tool in selection-surface order.
func Tools() []Tool {
	return []Tool{ToolPaint, ToolErase, ToolPick, ToolFill}
}
