package model

const (
	NoPronunciation = "No pronunciation available"
	NoExample       = "No example available"
	UnknownPOS      = "Unknown"
)

// WordDetail は辞書APIの結果を正規化したもの
type WordDetail struct {
	Word          string              `json:"word"`
	Definitions   []PartOfSpeechGroup `json:"definitions"`
	Pronunciation string              `json:"pronunciation"`
	Synonyms      []string            `json:"synonyms"`
	Example       string              `json:"example"`
}

type PartOfSpeechGroup struct {
	PartOfSpeech string          `json:"part_of_speech"`
	Definitions  []DefinitionRow `json:"definitions"`
}

type DefinitionRow struct {
	Definition string  `json:"definition"`
	Example    *string `json:"example,omitempty"`
}
