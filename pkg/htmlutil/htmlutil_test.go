package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCellTexts(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<table><tr><td> 1 </td><td><b>17-05-2024</b></td><td>Court <i>II</i></td></tr></table>`,
	))
	if err != nil {
		t.Fatal(err)
	}

	texts := CellTexts(doc.Find("td"))
	require.Equal(t, []string{"1", "17-05-2024", "Court II"}, texts)
}

func TestCellTextsOnlyTrims(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		"<table><tr><td>  Court  No.\n 1  </td><td>&nbsp;17-05-2024&nbsp;</td><td>\t</td></tr></table>",
	))
	if err != nil {
		t.Fatal(err)
	}

	texts := CellTexts(doc.Find("td"))
	require.Equal(t, []string{"Court  No.\n 1", "17-05-2024", ""}, texts)
}
