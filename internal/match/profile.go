package match

import (
	"strings"

	"github.com/internmatch/internmatch/internal/classifier"
)

// Profile is a candidate's declared background for one recommendation
// request. It is a value: constructed fresh per request and compared
// only by content.
type Profile struct {
	Education string   `json:"education"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Location  string   `json:"location,omitempty"`
	Age       *int     `json:"age,omitempty"`
}

// Features derives the classifier input from the profile. Skills and
// interests are flattened to single delimited strings, matching the
// text representation the classification service was trained on.
func (p Profile) Features() classifier.Features {
	return classifier.Features{
		Skills:    strings.Join(p.Skills, ", "),
		Interests: strings.Join(p.Interests, ", "),
		Education: strings.TrimSpace(p.Education),
		Age:       p.Age,
	}
}
