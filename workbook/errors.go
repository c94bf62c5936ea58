package workbook

import "errors"

// ErrInvalidWorkbook indicates the input is not a readable xlsx container
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// ErrSheetNotFound indicates the requested worksheet does not exist
var ErrSheetNotFound = errors.New("sheet not found")
