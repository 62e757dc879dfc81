package format

// document is the raw YAML shape Decode unmarshals into, before it is
// validated and turned into board.Descriptions.
type document struct {
	Palette *paletteSpec  `yaml:"palette"`
	Rows    [][]blockSpec `yaml:"rows"`
	Cols    [][]blockSpec `yaml:"cols"`
}

// paletteSpec declares a multi-color puzzle's blank name and concrete
// colors. A document with no palette is a binary puzzle: every block is
// implicitly Black.
type paletteSpec struct {
	Blank  string      `yaml:"blank"`
	Colors []colorSpec `yaml:"colors"`
}

type colorSpec struct {
	Name string   `yaml:"name"`
	RGB  [3]uint8 `yaml:"rgb"`
}

// blockSpec is one clue block. Color is optional on a binary puzzle
// (omitted Color defaults to Black); it is required once a palette is
// declared.
type blockSpec struct {
	Size  int    `yaml:"size"`
	Color string `yaml:"color"`
}
