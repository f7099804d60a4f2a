package h5p

// Content is a content.json block. Library names the main library the
// block is shaped for.
type Content interface {
	Library() Dependency
}

type Image struct {
	Path string `json:"path"`
}

// NewImage returns nil for a blank path so the field encodes as null.
func NewImage(path string) *Image {
	if path == "" {
		return nil
	}
	return &Image{Path: path}
}

// ---- H5P.DragText / H5P.DragWords ----

type DragBehaviour struct {
	EnableRetry           bool  `json:"enableRetry"`
	EnableSolutionsButton bool  `json:"enableSolutionsButton"`
	InstantFeedback       *bool `json:"instantFeedback,omitempty"`
}

type DragText struct {
	TaskDescription string         `json:"taskDescription"`
	TextField       string         `json:"textField"`
	Behaviour       *DragBehaviour `json:"behaviour,omitempty"`
}

func (DragText) Library() Dependency { return LibDragText }

type DragWords struct {
	DragText
}

func (DragWords) Library() Dependency { return LibDragWords }

// ---- H5P.Blanks ----

type BlanksBehaviour struct {
	EnableRetry                bool `json:"enableRetry"`
	EnableSolutionsButton      bool `json:"enableSolutionsButton"`
	CaseSensitive              bool `json:"caseSensitive"`
	ShowSolutionsRequiresInput bool `json:"showSolutionsRequiresInput"`
	AutoCheck                  bool `json:"autoCheck"`
	SeparateLines              bool `json:"separateLines"`
}

type Blanks struct {
	Text      string            `json:"text"`
	Questions []string          `json:"questions"`
	Score     string            `json:"score"`
	Behaviour BlanksBehaviour   `json:"behaviour"`
	L10n      map[string]string `json:"l10n"`
}

func (Blanks) Library() Dependency { return LibBlanks }

// ---- H5P.QuestionSet ----

type QuestionSet struct {
	TaskDescription string     `json:"taskDescription"`
	ProgressType    string     `json:"progressType"`
	PassPercentage  int        `json:"passPercentage"`
	Questions       []Question `json:"questions"`
	IntroPage       IntroPage  `json:"introPage"`
	EndGame         EndGame    `json:"endGame"`
}

func (QuestionSet) Library() Dependency { return LibQuestionSet }

type IntroPage struct {
	ShowIntroPage bool `json:"showIntroPage"`
}

type EndGame struct {
	ShowResultPage     bool            `json:"showResultPage"`
	ShowSolutionButton bool            `json:"showSolutionButton"`
	ShowRetryButton    bool            `json:"showRetryButton"`
	NoResultMessage    string          `json:"noResultMessage"`
	Message            string          `json:"message"`
	OverallFeedback    []FeedbackRange `json:"overallFeedback"`
}

type FeedbackRange struct {
	From     int    `json:"from"`
	To       int    `json:"to"`
	Feedback string `json:"feedback"`
}

// Question is one sub-content entry of a question set.
type Question struct {
	Library      string           `json:"library"`
	Params       *MultiChoice     `json:"params"`
	SubContentID string           `json:"subContentId"`
	Metadata     QuestionMetadata `json:"metadata"`
}

type QuestionMetadata struct {
	ContentType string `json:"contentType"`
	License     string `json:"license"`
	Title       string `json:"title"`
}

type Answer struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type MultiChoiceBehaviour struct {
	SingleAnswer               bool   `json:"singleAnswer,omitempty"`
	EnableRetry                bool   `json:"enableRetry"`
	EnableSolutionsButton      bool   `json:"enableSolutionsButton"`
	EnableCheckButton          bool   `json:"enableCheckButton"`
	Type                       string `json:"type,omitempty"`
	SinglePoint                bool   `json:"singlePoint"`
	RandomAnswers              bool   `json:"randomAnswers"`
	ShowSolutionsRequiresInput bool   `json:"showSolutionsRequiresInput"`
	ConfirmCheckDialog         bool   `json:"confirmCheckDialog"`
	ConfirmRetryDialog         bool   `json:"confirmRetryDialog"`
	AutoCheck                  bool   `json:"autoCheck"`
	PassPercentage             int    `json:"passPercentage"`
}

type MultiChoice struct {
	Question  string               `json:"question"`
	Answers   []Answer             `json:"answers"`
	Behaviour MultiChoiceBehaviour `json:"behaviour"`
	UI        map[string]string    `json:"UI"`
}

// MultiChoiceUI is the English label set shared by generated multi choice questions.
func MultiChoiceUI() map[string]string {
	return map[string]string{
		"checkAnswerButton":  "Check",
		"showSolutionButton": "Show solution",
		"tryAgainButton":     "Retry",
		"tipsLabel":          "Show tip",
		"scoreBarLabel":      "Score",
		"tipAvailable":       "Tip available",
		"feedbackAvailable":  "Feedback available",
		"readFeedback":       "Read feedback",
		"wrongAnswer":        "Wrong answer",
		"correctAnswer":      "Correct answer",
		"shouldCheck":        "Should have been checked",
		"shouldNotCheck":     "Should not have been checked",
	}
}

// ---- H5P.MemoryGame ----

type Card struct {
	Image    *Image `json:"image"`
	Text     string `json:"text"`
	MatchAlt string `json:"matchAlt"`
}

type MemoryBehaviour struct {
	AllowRetry bool   `json:"allowRetry"`
	UseGrid    bool   `json:"useGrid"`
	CardsToUse string `json:"cardsToUse"`
}

type MemoryGame struct {
	Cards     []Card          `json:"cards"`
	Behaviour MemoryBehaviour `json:"behaviour"`
}

func (MemoryGame) Library() Dependency { return LibMemoryGame }

// ---- H5P.Flashcards ----

type Flashcard struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
	Image  *Image `json:"image"`
	Tip    string `json:"tip"`
}

type FlashcardsBehaviour struct {
	EnableRetry bool `json:"enableRetry"`
	RandomCards bool `json:"randomCards"`
}

type Flashcards struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Cards       []Flashcard         `json:"cards"`
	Behaviour   FlashcardsBehaviour `json:"behaviour"`
}

func (Flashcards) Library() Dependency { return LibFlashcards }

// ---- H5P.WordSearch ----

type WordSearchBehaviour struct {
	EnableRetry         bool `json:"enableRetry"`
	ShowSolutionsButton bool `json:"showSolutionsButton"`
}

type WordSearch struct {
	TaskDescription string              `json:"taskDescription"`
	WordList        string              `json:"wordList"`
	Behaviour       WordSearchBehaviour `json:"behaviour"`
	L10n            map[string]string   `json:"l10n"`
}

func (WordSearch) Library() Dependency { return LibWordSearch }

// ---- H5P.Crossword ----

type CrosswordWord struct {
	Clue        string `json:"clue"`
	Answer      string `json:"answer"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Orientation string `json:"orientation"`
	ClueID      int    `json:"clueId"`
}

type Crossword struct {
	TaskDescription string          `json:"taskDescription"`
	Words           []CrosswordWord `json:"words"`
}

func (Crossword) Library() Dependency { return LibCrossword }
