package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mylxsw/xlsplit/splitter"
	"github.com/mylxsw/xlsplit/workbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ordersWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Orders"))
	rows := [][]interface{}{
		{"Orders report"},
		{"ID", "Region", "Amount"},
		{1, "East", 10},
		{2, "West", 20},
		{3, "East", 30},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, f.SetSheetRow("Orders", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf.Bytes()
}

func newUpload(t *testing.T, path string, file []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := bytes.NewBuffer(nil)
	mw := multipart.NewWriter(body)
	if file != nil {
		fw, err := mw.CreateFormFile("file", "orders.xlsx")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func serve(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	rec := serve(t, New(0), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/api/split"`)

	rec = serve(t, New(0), httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreview(t *testing.T) {
	rec := serve(t, New(0), newUpload(t, "/api/preview", ordersWorkbook(t), map[string]string{"header_end": "1", "rows": "3"}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp previewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, []string{"Orders"}, resp.Sheets)
	assert.Equal(t, "Orders", resp.Sheet)
	assert.Len(t, resp.Rows, 3)
	assert.Equal(t, []string{"0: ID", "1: Region", "2: Amount"}, resp.Columns)
}

func TestSplit(t *testing.T) {
	rec := serve(t, New(0), newUpload(t, "/api/split", ordersWorkbook(t), map[string]string{
		"header_start": "0",
		"header_end":   "1",
		"split_column": "1: Region",
		"name_column":  "B",
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "split_excel_files.zip")

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)

	names := make([]string, 0)
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Orders_East.xlsx", "Orders_West.xlsx"}, names)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()

	ws, err := workbook.Load(rc, "")
	require.NoError(t, err)
	assert.Equal(t, 4, ws.MaxRow())
	assert.Equal(t, "East", ws.Lookup(4, 2).Value)
}

func TestSplitErrors(t *testing.T) {
	data := ordersWorkbook(t)

	testcases := []struct {
		name   string
		req    *http.Request
		status int
	}{
		{"missing file", newUpload(t, "/api/split", nil, nil), http.StatusBadRequest},
		{"bad header", newUpload(t, "/api/split", data, map[string]string{"header_end": "x"}), http.StatusBadRequest},
		{"header order", newUpload(t, "/api/split", data, map[string]string{"header_start": "2", "header_end": "1"}), http.StatusBadRequest},
		{"column range", newUpload(t, "/api/split", data, map[string]string{"split_column": "9"}), http.StatusBadRequest},
		{"bad column", newUpload(t, "/api/split", data, map[string]string{"name_column": "#"}), http.StatusBadRequest},
		{"not a workbook", newUpload(t, "/api/split", []byte("plain text"), nil), http.StatusUnprocessableEntity},
		{"unknown sheet", newUpload(t, "/api/split", data, map[string]string{"sheet": "Missing"}), http.StatusUnprocessableEntity},
		{"preview unknown sheet", newUpload(t, "/api/preview", data, map[string]string{"sheet": "Missing"}), http.StatusUnprocessableEntity},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(t, New(0), tc.req)
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}

func TestUploadLimit(t *testing.T) {
	rec := serve(t, New(128), newUpload(t, "/api/split", ordersWorkbook(t), nil))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(fmt.Errorf("wrap: %w", &splitter.ValidationError{Field: "x", Reason: "y"})))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(fmt.Errorf("%w: broken", workbook.ErrInvalidWorkbook)))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(workbook.ErrSheetNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))
}
