package openai

import (
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	simplejson "github.com/bitly/go-simplejson"
)

// extractReply walks output[0].content[0].text of the response body. Every
// step may come up empty, in which case the placeholder is returned. A
// malformed-but-successful response is not an error.
func extractReply(body []byte) string {
	doc, err := simplejson.NewJson(body)
	if err != nil {
		if misc.Truthy(os.Getenv("DEBUG")) {
			ancli.PrintWarn(fmt.Sprintf("response body is not json: %v\n", err))
		}
		return NoTextPlaceholder
	}
	text, ok := lookupText(doc)
	if !ok {
		return NoTextPlaceholder
	}
	return text
}

func lookupText(doc *simplejson.Json) (string, bool) {
	output, ok := doc.CheckGet("output")
	if !ok {
		return "", false
	}
	first, ok := index(output, 0)
	if !ok {
		return "", false
	}
	content, ok := first.CheckGet("content")
	if !ok {
		return "", false
	}
	part, ok := index(content, 0)
	if !ok {
		return "", false
	}
	textNode, ok := part.CheckGet("text")
	if !ok {
		return "", false
	}
	text, err := textNode.String()
	if err != nil {
		return "", false
	}
	return text, true
}

func index(j *simplejson.Json, i int) (*simplejson.Json, bool) {
	arr, err := j.Array()
	if err != nil || i < 0 || i >= len(arr) {
		return nil, false
	}
	return j.GetIndex(i), true
}
