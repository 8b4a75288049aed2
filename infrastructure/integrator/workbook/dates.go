package workbook

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// cellTimestampLayout é o formato das datas exportadas pelo sistema de permisos,
// o primeiro que o filtro de datas tenta
const cellTimestampLayout = "02/01/2006 15:04:05"

// Formatos embutidos do Excel que representam data ou hora
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// dateCells reescreve as células de data com o formato de texto da planilha.
// O GetRows devolve o valor já formatado pelo estilo da célula (por exemplo "1/15/25 10:20"),
// que não é entendido pelo filtro de datas.
type dateCells struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	styles   map[int]bool
}

func newDateCells(f *excelize.File, sheet string) *dateCells {
	d := &dateCells{f: f, sheet: sheet, styles: map[int]bool{}}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

func (d *dateCells) normalize(rows [][]string) error {
	for r, row := range rows {
		for c, value := range row {
			if value == "" {
				continue
			}

			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}

			isDate, err := d.isDateCell(axis)
			if err != nil {
				return errors.Wrapf(err, "workbook: failed to inspect %s", axis)
			}
			if !isDate {
				continue
			}

			raw, err := d.f.GetCellValue(d.sheet, axis, excelize.Options{RawCellValue: true})
			if err != nil {
				return errors.Wrapf(err, "workbook: failed to read %s", axis)
			}
			if formatted, ok := d.format(raw); ok {
				row[c] = formatted
			}
		}
	}
	return nil
}

func (d *dateCells) isDateCell(axis string) (bool, error) {
	cellType, err := d.f.GetCellType(d.sheet, axis)
	if err != nil {
		return false, err
	}
	switch cellType {
	case excelize.CellTypeDate:
		return true, nil
	case excelize.CellTypeUnset, excelize.CellTypeNumber:
	default:
		return false, nil
	}

	styleID, err := d.f.GetCellStyle(d.sheet, axis)
	if err != nil {
		return false, err
	}
	if isDate, ok := d.styles[styleID]; ok {
		return isDate, nil
	}

	style, err := d.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := builtInDateFormats[style.NumFmt]
	if style.CustomNumFmt != nil {
		isDate = isDateFormatCode(*style.CustomNumFmt)
	}
	d.styles[styleID] = isDate
	return isDate, nil
}

// format converte o número serial (ou a data ISO de células do tipo "d")
func (d *dateCells) format(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, d.date1904)
		if err != nil {
			return "", false
		}
		return t.Format(cellTimestampLayout), true
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(cellTimestampLayout), true
		}
	}
	return "", false
}

// isDateFormatCode procura tokens de data ou hora fora de textos entre aspas e de
// blocos entre colchetes como [Red] ou [$-409]
func isDateFormatCode(code string) bool {
	var quoted, bracket, escaped bool
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[':
			bracket = true
		case r == ']':
			bracket = false
		case bracket:
		case r == 'y', r == 'd', r == 'h', r == 's':
			return true
		}
	}
	return false
}
