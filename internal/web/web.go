package web

import (
	"database/sql"
	"embed"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"os"
	"strings"

	"mspro-labs/cupnote/internal/db"
	"mspro-labs/cupnote/internal/labelparser"
	"mspro-labs/cupnote/internal/models"
	"mspro-labs/cupnote/internal/ocr"
)

// Embed the 'templates' directory.
// The path is relative to this file (internal/web/web.go).
//
//go:embed templates
var Assets embed.FS

var logger = log.New(os.Stdout, "WEB: ", log.LstdFlags|log.Lshortfile)

// Helper for templates
var funcMap = template.FuncMap{
	"fields": func(info labelparser.ParsedCoffeeInfo) []fieldValue {
		var out []fieldValue
		for _, f := range labelparser.Fields {
			if v := info.Get(f); v != "" {
				out = append(out, fieldValue{Name: string(f), Value: v})
			}
		}
		return out
	},
}

type fieldValue struct {
	Name  string
	Value string
}

// ParseRequest is the body of POST /api/parse. Exactly one of the inputs is used,
// in the order blocks, lines, text.
type ParseRequest struct {
	Text   string              `json:"text,omitempty"`
	Lines  []string            `json:"lines,omitempty"`
	Blocks []labelparser.Block `json:"blocks,omitempty"`
	Source string              `json:"source,omitempty"`
	Save   bool                `json:"save,omitempty"`
}

// ParseResponse is returned by POST /api/parse.
type ParseResponse struct {
	Info   labelparser.ParsedCoffeeInfo `json:"info"`
	Saved  bool                         `json:"saved"`
	Source string                       `json:"source,omitempty"`
}

type scanJSON struct {
	Source    string                       `json:"source"`
	Info      labelparser.ParsedCoffeeInfo `json:"info"`
	UpdatedAt string                       `json:"updatedAt"`
}

// Server serves the journal page and the parse API.
type Server struct {
	database *sql.DB
	svc      *ocr.Service
	homeTmpl *template.Template
}

// NewServer pre-builds templates and returns the server.
func NewServer(database *sql.DB, svc *ocr.Service) (*Server, error) {
	// Base Template (shared layout + funcs), then home = base + home.html
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(Assets, "templates/base.html")
	if err != nil {
		return nil, err
	}
	homeTmpl, err := template.Must(base.Clone()).ParseFS(Assets, "templates/home.html")
	if err != nil {
		return nil, err
	}
	return &Server{database: database, svc: svc, homeTmpl: homeTmpl}, nil
}

// Handler returns the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /api/parse", s.handleParse)
	mux.HandleFunc("GET /api/scans", s.handleScans)
	return mux
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	scans, err := db.ListScans(s.database, 100)
	if err != nil {
		logger.Printf("DB error: %v", err)
		http.Error(w, "Failed to load journal", http.StatusInternalServerError)
		return
	}
	if err := s.homeTmpl.ExecuteTemplate(w, "base.html", scans); err != nil {
		logger.Printf("Template error: %v", err)
	}
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	var (
		info labelparser.ParsedCoffeeInfo
		raw  string
	)
	switch {
	case len(req.Blocks) > 0:
		info = s.svc.ParseBlocks(req.Blocks)
		raw = strings.Join(labelparser.OrderLines(req.Blocks), "\n")
	case len(req.Lines) > 0:
		info = s.svc.Parser().ParseLines(req.Lines)
		raw = strings.Join(req.Lines, "\n")
	case strings.TrimSpace(req.Text) != "":
		info = s.svc.ParseCoffeeInfo(req.Text)
		raw = req.Text
	default:
		http.Error(w, "one of text, lines or blocks is required", http.StatusBadRequest)
		return
	}
	info = s.svc.Validate(info)

	resp := ParseResponse{Info: info}
	if req.Save {
		if req.Source == "" {
			http.Error(w, "source is required to save", http.StatusBadRequest)
			return
		}
		scan := models.Scan{Source: req.Source, RawText: raw, Info: info}
		if _, err := db.SaveScans(s.database, []models.Scan{scan}); err != nil {
			logger.Printf("DB error: %v", err)
			http.Error(w, "Failed to save scan", http.StatusInternalServerError)
			return
		}
		resp.Saved, resp.Source = true, req.Source
	}
	writeJSON(w, resp)
}

func (s *Server) handleScans(w http.ResponseWriter, r *http.Request) {
	scans, err := db.ListScans(s.database, 0)
	if err != nil {
		logger.Printf("DB error: %v", err)
		http.Error(w, "Failed to load journal", http.StatusInternalServerError)
		return
	}
	out := make([]scanJSON, 0, len(scans))
	for _, sc := range scans {
		out = append(out, scanJSON{
			Source:    sc.Source,
			Info:      sc.Info,
			UpdatedAt: sc.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Printf("Encode error: %v", err)
	}
}
