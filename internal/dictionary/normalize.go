package dictionary

import "go_5_vocab_bookmark/internal/model"

// dictionaryapi.dev のレスポンス
type entry struct {
	Word      string     `json:"word"`
	Phonetic  string     `json:"phonetic"`
	Phonetics []phonetic `json:"phonetics"`
	Meanings  []meaning  `json:"meanings"`
}

type phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}

type meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
}

type definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
}

func normalize(e entry) *model.WordDetail {
	detail := &model.WordDetail{
		Word:          e.Word,
		Definitions:   make([]model.PartOfSpeechGroup, 0, len(e.Meanings)),
		Pronunciation: pronunciation(e),
		Synonyms:      []string{},
		Example:       model.NoExample,
	}

	seen := make(map[string]struct{})
	addSynonyms := func(words []string) {
		for _, s := range words {
			if _, ok := seen[s]; ok || s == "" {
				continue
			}
			seen[s] = struct{}{}
			detail.Synonyms = append(detail.Synonyms, s)
		}
	}

	exampleFound := false
	for _, m := range e.Meanings {
		pos := m.PartOfSpeech
		if pos == "" {
			pos = model.UnknownPOS
		}
		group := model.PartOfSpeechGroup{
			PartOfSpeech: pos,
			Definitions:  make([]model.DefinitionRow, 0, len(m.Definitions)),
		}
		addSynonyms(m.Synonyms)
		for _, d := range m.Definitions {
			row := model.DefinitionRow{Definition: d.Definition}
			if d.Example != "" {
				ex := d.Example
				row.Example = &ex
				if !exampleFound {
					detail.Example = ex
					exampleFound = true
				}
			}
			addSynonyms(d.Synonyms)
			group.Definitions = append(group.Definitions, row)
		}
		detail.Definitions = append(detail.Definitions, group)
	}
	return detail
}

func pronunciation(e entry) string {
	if e.Phonetic != "" {
		return e.Phonetic
	}
	for _, p := range e.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return model.NoPronunciation
}
