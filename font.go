package brush

// Font is an owned, shareable font resource.
type Font struct {
	// Data contains the content of the font file.
	Data Blob
	// Index of the font in a collection, or 0 for a single font.
	Index uint32
}

func NewFont(data Blob, index uint32) Font {
	return Font{Data: data, Index: index}
}
