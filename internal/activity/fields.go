package activity

// Candidate key orders per semantic slot. Every adapter resolves fields
// through these lists so the priority of alternate names lives in one place.
var (
	PromptKeys    = []string{"question", "term", "prompt", "text"}
	AnswerKeys    = []string{"answer", "definition", "correctAnswer"}
	OptionsKey    = "options"
	ImageKeys     = []string{"image", "promptImage"}
	GroupItemsKey = "items"

	MatchPromptKeys = []string{"left", "term", "question", "prompt"}
	MatchAnswerKeys = []string{"right", "definition", "answer", "match"}
	MatchImageKeys  = []string{"leftImage", "image", "promptImage"}

	CardFrontKeys = []string{"front", "term", "question"}
	CardBackKeys  = []string{"back", "definition", "answer"}

	ClueKeys       = []string{"clue", "question", "term"}
	ClueAnswerKeys = []string{"answer", "definition", "correctAnswer"}

	SentenceKeys  = []string{"correct", "answer", "sentence", "text"}
	RankedKeys    = []string{"term", "question", "answer", "definition", "text"}
	SegmentKeys   = []string{"text", "segment", "label", "answer"}
	AnagramKeys   = []string{"answer", "word", "text", "term"}
	SearchKeys    = []string{"word", "text", "answer", "term"}
	StatementKeys = []string{"text", "statement", "question"}

	GroupLabelKeys = []string{"label", "title"}
	GroupNameKeys  = []string{"answer", "group", "category"}

	QuestionTypeKey  = "type"
	CorrectIndexKeys = []string{"correctIndex", "correct_index"}
	CorrectFlagKeys  = []string{"correct", "answer", "isTrue"}
)
