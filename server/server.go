package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/mylxsw/asteria/log"
	"github.com/mylxsw/xlsplit/archive"
	"github.com/mylxsw/xlsplit/reader"
	"github.com/mylxsw/xlsplit/render"
	"github.com/mylxsw/xlsplit/splitter"
	"github.com/mylxsw/xlsplit/workbook"
)

// DefaultMaxUpload is the default request body limit
const DefaultMaxUpload int64 = 64 << 20

// Server serves the upload form and the split api
type Server struct {
	maxUpload int64
}

// New creates a server, maxUpload <= 0 means DefaultMaxUpload
func New(maxUpload int64) *Server {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}

	return &Server{maxUpload: maxUpload}
}

// Handler returns the routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("POST /api/preview", s.preview)
	mux.HandleFunc("POST /api/split", s.split)

	return mux
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexPage)
}

type previewResponse struct {
	Sheets  []string   `json:"sheets"`
	Sheet   string     `json:"sheet"`
	Rows    [][]string `json:"rows"`
	Columns []string   `json:"columns"`
}

func (s *Server) preview(w http.ResponseWriter, r *http.Request) {
	data, err := s.upload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	headerEnd, err := intParam(r, "header_end", splitter.DefaultOptions().HeaderEnd)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	limit, err := intParam(r, "rows", reader.DefaultPreviewRows)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	p, err := reader.PreviewBytes(data, r.FormValue("sheet"), headerEnd, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := render.JSON(w, previewResponse{Sheets: p.Sheets, Sheet: p.Sheet, Rows: p.Rows, Columns: p.Columns()}); err != nil {
		log.Errorf("write preview response failed: %v", err)
	}
}

func (s *Server) split(w http.ResponseWriter, r *http.Request) {
	data, err := s.upload(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	opt, err := parseOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ws, err := workbook.Load(bytes.NewReader(data), opt.Sheet)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	arc := archive.New(opt.UniqueNames)
	reports, err := splitter.SplitToArchive(ws, opt, arc, nil)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	body, err := arc.Bytes()
	if err != nil {
		s.fail(w, r, err)
		return
	}

	log.WithFields(log.Fields{
		"sheet": ws.Title,
		"files": len(reports),
		"size":  len(body),
	}).Infof("split finished")

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.DefaultName))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	_, _ = w.Write(body)
}

func (s *Server) upload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.ContentLength > s.maxUpload {
		return nil, &http.MaxBytesError{Limit: s.maxUpload}
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}

		return nil, &splitter.ValidationError{Field: "request", Reason: err.Error()}
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, &splitter.ValidationError{Field: "file", Reason: "an xlsx file is required"}
	}
	defer file.Close()

	return io.ReadAll(file)
}

func parseOptions(r *http.Request) (splitter.Options, error) {
	opt := splitter.DefaultOptions()
	opt.Sheet = strings.TrimSpace(r.FormValue("sheet"))

	var err error
	if opt.HeaderStart, err = intParam(r, "header_start", opt.HeaderStart); err != nil {
		return opt, err
	}

	if opt.HeaderEnd, err = intParam(r, "header_end", opt.HeaderEnd); err != nil {
		return opt, err
	}

	if opt.SplitColumn, err = columnParam(r, "split_column", opt.SplitColumn); err != nil {
		return opt, err
	}

	if opt.NameColumn, err = columnParam(r, "name_column", opt.NameColumn); err != nil {
		return opt, err
	}

	opt.UniqueNames = boolParam(r, "unique_names")
	opt.PinyinNames = boolParam(r, "pinyin_names")

	return opt, nil
}

func intParam(r *http.Request, name string, def int) (int, error) {
	val := strings.TrimSpace(r.FormValue(name))
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, &splitter.ValidationError{Field: name, Reason: fmt.Sprintf("%s is not an integer", val)}
	}

	return res, nil
}

func columnParam(r *http.Request, name string, def int) (int, error) {
	val := strings.TrimSpace(r.FormValue(name))
	if val == "" {
		return def, nil
	}

	// the form posts "index: value" options
	if idx := strings.Index(val, ":"); idx > 0 {
		val = val[:idx]
	}

	col, err := splitter.ParseColumn(val)
	if err != nil {
		return 0, &splitter.ValidationError{Field: name, Reason: fmt.Sprintf("%s is neither an index nor a column name", val)}
	}

	return col, nil
}

func boolParam(r *http.Request, name string) bool {
	switch strings.ToLower(strings.TrimSpace(r.FormValue(name))) {
	case "1", "true", "on", "yes":
		return true
	}

	return false
}

// StatusOf maps an error to its http status code
func StatusOf(err error) int {
	var invalid *splitter.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, workbook.ErrInvalidWorkbook), errors.Is(err, workbook.ErrSheetNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)

	fields := log.Fields{"path": r.URL.Path, "status": status}
	if status >= http.StatusInternalServerError {
		log.WithFields(fields).Errorf("request failed: %v", err)
	} else {
		log.WithFields(fields).Warningf("request rejected: %v", err)
	}

	http.Error(w, err.Error(), status)
}
