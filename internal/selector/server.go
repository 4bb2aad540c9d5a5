// Package selector serves the court selection page and renders a document for
// the chosen court.
package selector

import (
	_ "embed"
	"net/http"

	"ecourts-scraper/internal/components/assert"
	"ecourts-scraper/internal/components/chrono"
	"ecourts-scraper/internal/components/telemetry"

	"github.com/gin-gonic/gin"
)

const (
	report_download_render = "download.render"
	report_download_bundle = "download.bundle"
	report_download_served = "download.served"
)

const incompleteSelectionMessage = "Please select all dropdowns."

//go:embed index.html
var indexPage []byte

type Server struct {
	clock chrono.API
	tel   telemetry.API
}

func NewServer(clock chrono.API, tel telemetry.API) Server {
	assert.NotNil(clock)
	assert.NotNil(tel)
	return Server{
		clock: clock,
		tel:   telemetry.NewScopedAPI("selector", tel),
	}
}

func (s Server) Register(r gin.IRoutes) {
	r.GET("/", s.index)
	r.GET("/fetch_states", s.fetchStates)
	r.GET("/fetch_districts", s.fetchDistricts)
	r.GET("/fetch_complexes", s.fetchComplexes)
	r.GET("/fetch_courts", s.fetchCourts)
	r.POST("/download", s.download)
}

type optionsResponse struct {
	Success bool     `json:"success"`
	Items   []Option `json:"items"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondOptions(c *gin.Context, items []Option) {
	c.JSON(http.StatusOK, optionsResponse{Success: true, Items: items})
}

func (s Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (s Server) fetchStates(c *gin.Context) {
	respondOptions(c, States())
}

func (s Server) fetchDistricts(c *gin.Context) {
	respondOptions(c, Districts(c.Query("state")))
}

func (s Server) fetchComplexes(c *gin.Context) {
	respondOptions(c, Complexes(c.Query("district")))
}

func (s Server) fetchCourts(c *gin.Context) {
	respondOptions(c, Courts(c.Query("complex")))
}

func (s Server) download(c *gin.Context) {
	var selection Selection
	err := c.ShouldBind(&selection)
	if err == nil {
		err = selection.Validate()
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: incompleteSelectionMessage})
		return
	}

	now := s.clock.Now()
	doc, err := RenderPDF(selection, now)
	if err != nil {
		s.tel.ReportBroken(report_download_render, err, selection.Filename())
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if c.PostForm("download_all") != "on" {
		s.tel.ReportCount(report_download_served, 1)
		attach(c, selection.Filename(), "application/pdf", doc)
		return
	}

	bundle, err := Bundle(map[string][]byte{selection.Filename(): doc})
	if err != nil {
		s.tel.ReportBroken(report_download_bundle, err, selection.Filename())
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	s.tel.ReportCount(report_download_served, 1)
	attach(c, BundleFilename(now), "application/zip", bundle)
}

func attach(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
