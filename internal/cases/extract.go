package cases

import (
	"bytes"
	"context"
	"fmt"

	"ecourts-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("ecourts.cases")

// minListingCells is the smallest row that carries date, court and serial no.
const minListingCells = 4

// ExtractListings parses the first table of a case-status page into listings.
// The header row is skipped, rows with fewer than four cells are dropped and
// row order is preserved.
func ExtractListings(ctx context.Context, rawHtml []byte) ([]HearingListing, error) {
	_, span := tracer.Start(ctx, "ExtractListings")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHtml))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTableFound
	}

	rows := tableRows(table)
	if len(rows) > 0 {
		rows = rows[1:]
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = htmlutil.CellTexts(row.ChildrenFiltered("td"))
	}

	listings := make([]HearingListing, 0, len(cells))
	for _, row := range cells {
		if len(row) < minListingCells {
			continue
		}
		listings = append(listings, HearingListing{
			HearingDate:  row[1],
			CourtName:    row[2],
			SerialNumber: row[3],
		})
	}

	span.SetAttributes(
		attribute.Int("rows", len(rows)),
		attribute.Int("listings", len(listings)),
	)
	return listings, nil
}

// tableRows returns the rows that belong to `table` itself, rows of nested
// tables are left out.
func tableRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if row.Closest("table").IsSelection(table) {
			rows = append(rows, row)
		}
	})
	return rows
}
