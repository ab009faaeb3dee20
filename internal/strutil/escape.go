package strutil

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
)

// EscapeJSON escapes a string for embedding in JSON output, without the
// surrounding quotes.
func EscapeJSON(s string) string {
	// json.Marshal of a string never fails.
	data, _ := json.Marshal(s)
	return string(data[1 : len(data)-1])
}

// EscapeXML escapes a string for embedding in XML character data.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	// xml.EscapeText only fails on writer errors; bytes.Buffer has none.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
