package h5p

import "fmt"

// Dependency is one entry of preloadedDependencies.
type Dependency struct {
	MachineName  string `json:"machineName"`
	MajorVersion int    `json:"majorVersion"`
	MinorVersion int    `json:"minorVersion"`
}

// String is the "Name major.minor" form used by sub-content library fields.
func (d Dependency) String() string {
	return fmt.Sprintf("%s %d.%d", d.MachineName, d.MajorVersion, d.MinorVersion)
}

var (
	LibBlanks      = Dependency{"H5P.Blanks", 1, 14}
	LibDragText    = Dependency{"H5P.DragText", 1, 10}
	LibDragWords   = Dependency{"H5P.DragWords", 1, 11}
	LibMemoryGame  = Dependency{"H5P.MemoryGame", 1, 3}
	LibFlashcards  = Dependency{"H5P.Flashcards", 1, 5}
	LibQuestionSet = Dependency{"H5P.QuestionSet", 1, 20}
	LibMultiChoice = Dependency{"H5P.MultiChoice", 1, 16}
	LibWordSearch  = Dependency{"H5P.WordSearch", 1, 4}
	LibCrossword   = Dependency{"H5P.Crossword", 0, 4}

	LibFontAwesome = Dependency{"FontAwesome", 4, 5}
	LibFontIcon    = Dependency{"H5P.FontIcon", 1, 0}
	LibJoubelUI    = Dependency{"H5P.JoubelUI", 1, 3}
	LibQuestion    = Dependency{"H5P.Question", 1, 5}
	LibTransition  = Dependency{"H5P.Transition", 1, 0}
)

// CoreAPI is the minimum player core version written to h5p.json.
var CoreAPI = struct {
	MajorVersion int `json:"majorVersion"`
	MinorVersion int `json:"minorVersion"`
}{1, 24}
