package core

// Tag identifies what occupies a screen cell. The renderer maps tags to
// terminal styles; the engine never deals with colors directly.
type Tag uint8

// Display tags, in no particular priority order.
const (
	TagEmpty Tag = iota
	TagBorder
	TagSnake
	TagHead
	TagGameOverHead
	TagFood
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagEmpty:
		return "Empty"
	case TagBorder:
		return "Border"
	case TagSnake:
		return "Snake"
	case TagHead:
		return "Head"
	case TagGameOverHead:
		return "GameOverHead"
	case TagFood:
		return "Food"
	default:
		return "Unknown"
	}
}

// Tags lists every tag, for style tables that must cover them all.
func Tags() []Tag {
	return []Tag{TagEmpty, TagBorder, TagSnake, TagHead, TagGameOverHead, TagFood}
}
