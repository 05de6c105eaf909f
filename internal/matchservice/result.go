package matchservice

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// ErrMalformedResponse marks a success response whose body is not a list of match results.
var ErrMalformedResponse = errors.New("malformed response")

var validate = validator.New()

// MatchResult is one ranked job match returned by the service.
type MatchResult struct {
	JobTitle        string  `json:"job_title" mapstructure:"job_title"`
	GeneralScore    float64 `json:"general_score" mapstructure:"general_score" validate:"gte=0,lte=1"`
	SkillMatch      float64 `json:"skill_match" mapstructure:"skill_match" validate:"gte=0,lte=1"`
	ExperienceMatch float64 `json:"experience_match" mapstructure:"experience_match" validate:"gte=0,lte=1"`
	ReportSummary   string  `json:"report_summary" mapstructure:"report_summary"`
}

type Item interface{}

// parseResults decodes a response body into match results, keeping the
// service order. Unknown keys are ignored; missing keys and wrong types are not.
var resultKeys = []string{"job_title", "general_score", "skill_match", "experience_match", "report_summary"}

func parseResults(data []byte) ([]MatchResult, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if items == nil {
		return nil, fmt.Errorf("%w: body is not a list", ErrMalformedResponse)
	}

	results := make([]MatchResult, 0, len(items))
	for idx, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: item %d is not an object", ErrMalformedResponse, idx)
		}

		// ErrorUnset only checks that a key exists, a null would decode as a zero value
		for _, key := range resultKeys {
			if value, present := fields[key]; present && value == nil {
				return nil, fmt.Errorf("%w: item %d: %s is null", ErrMalformedResponse, idx, key)
			}
		}

		var result MatchResult
		cfg := &mapstructure.DecoderConfig{
			Result:     &result,
			TagName:    "mapstructure",
			ErrorUnset: true,
		}
		decoder, err := mapstructure.NewDecoder(cfg)
		if err != nil {
			return nil, err
		}

		if err := decoder.Decode(item); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedResponse, idx, err)
		}

		if err := validate.Struct(result); err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrMalformedResponse, idx, err)
		}

		results = append(results, result)
	}

	return results, nil
}
