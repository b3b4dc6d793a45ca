// Package testutils provides XML fixture helpers shared by tests.
package testutils

import (
	"fmt"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// ParseXML parses an XML fixture, failing the test on malformed input.
func ParseXML(t testing.TB, src string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(src), "fixture must parse")
	return doc
}

// ReplyDocument builds the canonical reply envelope around a data payload.
// dataXML is spliced inside the data element verbatim.
func ReplyDocument(t testing.TB, code int, desc, dataXML string) *etree.Document {
	t.Helper()
	return ParseXML(t, fmt.Sprintf(
		`<openXML><reply><code>%d</code><desc>%s</desc><data>%s</data></reply></openXML>`,
		code, desc, dataXML))
}
