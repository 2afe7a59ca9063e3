package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pscheid92/sentimentapi/internal/domain"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var responseFormat = &pretty.Options{Width: 80, Indent: "    "}

// decodeItems reads a JSON object of id -> text preserving document order.
// It returns false when the body is empty, malformed, not an object or an empty object.
// For duplicate keys the last value wins at the position of the first occurrence.
// Non-string values are kept with Valid set to false.
func decodeItems(body []byte) ([]domain.Item, bool) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return nil, false
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, false
	}

	var items []domain.Item
	index := make(map[string]int)
	doc.ForEach(func(key, value gjson.Result) bool {
		item := domain.Item{ID: key.String()}
		if value.Type == gjson.String {
			item.Text = value.Str
			item.Valid = true
		}
		if i, ok := index[item.ID]; ok {
			items[i] = item
			return true
		}
		index[item.ID] = len(items)
		items = append(items, item)
		return true
	})

	return items, len(items) > 0
}

// encodeResults renders results as a JSON object in result order, indented with four spaces.
func encodeResults(resp *domain.AnalysisResponse) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, result := range resp.Results {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, result.ID); err != nil {
			return nil, fmt.Errorf("encode key %q: %w", result.ID, err)
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, result); err != nil {
			return nil, fmt.Errorf("encode result %q: %w", result.ID, err)
		}
	}
	buf.WriteByte('}')

	return bytes.TrimSuffix(pretty.PrettyOptions(buf.Bytes(), responseFormat), []byte("\n")), nil
}

// writeJSON appends v without HTML escaping, so '<', '>' and '&' stay readable.
func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}
