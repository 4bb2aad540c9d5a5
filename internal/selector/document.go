package selector

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

var ErrIncompleteSelection = errors.New("incomplete selection")

// Selection is one fully chosen court.
type Selection struct {
	State    string `form:"state"`
	District string `form:"district"`
	Complex  string `form:"complex"`
	Court    string `form:"court"`
}

func (s Selection) Validate() error {
	if s.State == "" || s.District == "" || s.Complex == "" || s.Court == "" {
		return ErrIncompleteSelection
	}
	return nil
}

// Filename is "<state>_<district>_<complex>_<court>.pdf" with spaces replaced.
func (s Selection) Filename() string {
	name := fmt.Sprintf("%s_%s_%s_%s.pdf", s.State, s.District, s.Complex, s.Court)
	return strings.ReplaceAll(name, " ", "_")
}

func (s Selection) lines() []string {
	return []string{
		"State: " + s.State,
		"District: " + s.District,
		"Complex: " + s.Complex,
		"Court: " + s.Court,
	}
}

// RenderPDF writes a single page listing the selection.
func RenderPDF(s Selection, createdAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(createdAt)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)

	y := 42.0
	for _, line := range s.lines() {
		pdf.Text(50, y, line)
		y += 30
	}

	buff := &bytes.Buffer{}
	err := pdf.Output(buff)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buff.Bytes(), nil
}

// BundleFilename is "ecourts_pdfs_<YYYYMMDD_HHMMSS>.zip".
func BundleFilename(now time.Time) string {
	return fmt.Sprintf("ecourts_pdfs_%s.zip", now.Format("20060102_150405"))
}

// Bundle zips each rendered document under its file name.
func Bundle(files map[string][]byte) ([]byte, error) {
	buff := &bytes.Buffer{}
	w := zip.NewWriter(buff)
	for name, body := range files {
		f, err := w.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		_, err = f.Write(body)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}
	err := w.Close()
	if err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buff.Bytes(), nil
}
