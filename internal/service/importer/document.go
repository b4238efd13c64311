package importer

import (
	"strings"

	"github.com/Taichi-iskw/transqa/internal/model"
)

type insight struct {
	Text *string `json:"text"`
}

// document is one en/ or es/ JSON file. Only es/ files carry a score object.
type document struct {
	Summary  *string        `json:"summary"`
	Insight1 *insight       `json:"insight1"`
	Insight2 *insight       `json:"insight2"`
	Insight3 *insight       `json:"insight3"`
	Score    *model.Metrics `json:"score"`
}

// text joins the summary and insight texts with blank lines
func (d document) text() string {
	var parts []string
	if d.Summary != nil {
		parts = append(parts, *d.Summary)
	}
	for _, in := range []*insight{d.Insight1, d.Insight2, d.Insight3} {
		if in != nil && in.Text != nil {
			parts = append(parts, *in.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
