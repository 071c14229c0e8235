package visual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func classes(scores map[string]float64) []ClassifyResp_Class {
	var out []ClassifyResp_Class
	for k, v := range scores {
		out = append(out, ClassifyResp_Class{Class: k, Score: v})
	}
	return out
}

func TestSummarizeSexualLabels(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		scores map[string]float64
		out    string
	}{
		{scores: map[string]float64{}, out: ""},
		{scores: map[string]float64{"yes_sexual_activity": 0.95}, out: "porn"},
		{scores: map[string]float64{"yes_sexual_activity": 0.5}, out: ""},
		{scores: map[string]float64{"yes_sexual_intent": 0.93}, out: "sexual"},
		{scores: map[string]float64{"yes_female_nudity": 0.97}, out: "nudity"},
		// porn wins over nudity when both score high
		{scores: map[string]float64{"yes_realistic_nsfw": 0.99, "yes_female_nudity": 0.99}, out: "porn"},
	}

	for _, fix := range fixtures {
		assert.Equal(fix.out, summarizeSexualLabels(classes(fix.scores)))
	}
}

func TestSummarizeLabels(t *testing.T) {
	assert := assert.New(t)

	resp := ClassifyResp{
		Status: []ClassifyResp_Status{{
			Response: ClassifyResp_Response{
				Output: []ClassifyResp_Out{{
					Classes: []ClassifyResp_Class{
						{Class: "very_bloody", Score: 0.95},
						{Class: "yes_sexual_activity", Score: 0.92},
						{Class: "irrelevant", Score: 0.99},
					},
				}},
			},
		}},
	}

	assert.Equal([]string{"graphic-media", "porn"}, resp.SummarizeLabels())
}
