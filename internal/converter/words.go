package converter

import (
	"encoding/json"

	"github.com/vhsenna/parts-unlimited/internal/wordfreq"
	apiv1 "github.com/vhsenna/parts-unlimited/pkg/api/v1"
)

func RankingToAPI(r wordfreq.Ranking) (apiv1.MostCommonWordsResponse, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return apiv1.MostCommonWordsResponse{}, err
	}

	return apiv1.MostCommonWordsResponse{MostCommonWords: raw}, nil
}
