package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type jsonFrame struct {
	array   bool
	key     string
	index   int
	wantKey bool
}

// fieldPathAt возвращает путь значения JSON, которое заканчивается на offset или после него.
// Индексы массивов входят в путь: "media.0.type".
func fieldPathAt(data []byte, offset int64) (string, bool) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var stack []*jsonFrame

	path := func() string {
		parts := make([]string, 0, len(stack))
		for _, f := range stack {
			if f.array {
				parts = append(parts, strconv.Itoa(f.index))
			} else {
				parts = append(parts, f.key)
			}
		}
		return strings.Join(parts, ".")
	}
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := stack[len(stack)-1]
		if top.array {
			top.index++
		} else {
			top.wantKey = true
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return "", false
		}

		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				if len(stack) > 0 && dec.InputOffset() >= offset {
					return path(), true
				}
				stack = append(stack, &jsonFrame{array: delim == '[', wantKey: delim == '{'})
			case '}', ']':
				stack = stack[:len(stack)-1]
				valueDone()
			}
			continue
		}

		if len(stack) > 0 {
			if top := stack[len(stack)-1]; !top.array && top.wantKey {
				top.key, _ = tok.(string)
				top.wantKey = false
				continue
			}
		}
		if len(stack) > 0 && dec.InputOffset() >= offset {
			return path(), true
		}
		valueDone()
	}
}
