// Package ingest parses bulk review exports (CSV, JSON, PDF) into review
// records for import.
package ingest

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"reviews-backend/internal/reviews"
)

// ErrNoRecords is returned when a payload parses cleanly but contains no
// review rows.
var ErrNoRecords = errors.New("no review records found")

// ParseCSV reads a header-addressed CSV export. Both schema generations are
// accepted: current headers (publishedAt, ownerResponse, staffMentions,
// themes) and legacy ones (date, responseText, staff, tags). Unknown columns
// are ignored; rows with an unparsable rating are dropped.
func ParseCSV(r io.Reader) ([]reviews.Review, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["rating"]; !ok {
		return nil, fmt.Errorf("csv export missing rating column")
	}

	field := func(record []string, names ...string) string {
		for _, name := range names {
			if idx, ok := columns[name]; ok && idx < len(record) {
				if v := strings.TrimSpace(record[idx]); v != "" {
					return v
				}
			}
		}
		return ""
	}

	var out []reviews.Review
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		rating, err := strconv.Atoi(field(record, "rating"))
		if err != nil {
			continue
		}
		out = append(out, reviews.Review{
			Rating:        rating,
			Text:          field(record, "text", "review", "comment"),
			PublishedAt:   field(record, "publishedat"),
			OwnerResponse: field(record, "ownerresponse"),
			Sentiment:     field(record, "sentiment"),
			StaffMentions: field(record, "staffmentions"),
			Themes:        field(record, "themes"),
			Language:      field(record, "language"),

			LegacyDate:     field(record, "date"),
			LegacyResponse: field(record, "responsetext"),
			LegacyStaff:    field(record, "staff"),
			LegacyTags:     field(record, "tags"),
		})
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}

// ParseJSON accepts either a bare array of reviews or an envelope with a
// "reviews" key, matching the two export shapes seen in the wild.
func ParseJSON(r io.Reader) ([]reviews.Review, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json export: %w", err)
	}

	var list []reviews.Review
	if err := json.Unmarshal(raw, &list); err != nil {
		var envelope struct {
			Reviews []reviews.Review `json:"reviews"`
		}
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, fmt.Errorf("parse json export: %w", err)
		}
		list = envelope.Reviews
	}
	if len(list) == 0 {
		return nil, ErrNoRecords
	}
	return list, nil
}

// ParsePDF extracts the plain text of a PDF review export and parses it as
// blank-line separated review blocks.
func ParsePDF(data []byte) ([]reviews.Review, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf export: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return nil, fmt.Errorf("read pdf text: %w", err)
	}
	return ParseText(buf.String())
}

var (
	ratingLine   = regexp.MustCompile(`(?i)^rating:?\s*([1-5])(?:\s*/\s*5|\s*stars?)?\s*$`)
	dateLine     = regexp.MustCompile(`(?i)^date:?\s*(.+)$`)
	responseLine = regexp.MustCompile(`(?i)^response:?\s*(.+)$`)
)

// ParseText parses the printable review-export layout: one block per review
// separated by blank lines, each block holding a "Rating: N" line, an
// optional "Date:" line, an optional "Response:" line, and free text.
func ParseText(text string) ([]reviews.Review, error) {
	var out []reviews.Review
	for _, block := range strings.Split(text, "\n\n") {
		review, ok := parseBlock(block)
		if ok {
			out = append(out, review)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}
	return out, nil
}

func parseBlock(block string) (reviews.Review, bool) {
	var review reviews.Review
	var textLines []string
	sawRating := false

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := ratingLine.FindStringSubmatch(line); m != nil {
			rating, _ := strconv.Atoi(m[1])
			review.Rating = rating
			sawRating = true
			continue
		}
		if m := dateLine.FindStringSubmatch(line); m != nil {
			review.PublishedAt = strings.TrimSpace(m[1])
			continue
		}
		if m := responseLine.FindStringSubmatch(line); m != nil {
			review.OwnerResponse = strings.TrimSpace(m[1])
			continue
		}
		textLines = append(textLines, line)
	}

	if !sawRating {
		return reviews.Review{}, false
	}
	review.Text = strings.Join(textLines, " ")
	return review, true
}
