package v1

import "encoding/json"

type MostCommonWordsResponse struct {
	// JSON object of word to count, keys in rank order.
	MostCommonWords json.RawMessage `json:"most_common_words"`
}
